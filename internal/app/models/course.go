package models

import "time"

// Course is the top-level authoring unit owned by a single teacher.
type Course struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"` // Nullable
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`      // Nullable
	Price       *float64  `json:"price,omitempty" db:"price"`             // Nullable
	CategoryID  *string   `json:"categoryId,omitempty" db:"category_id"`  // Nullable
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Chapters []*Chapter `json:"chapters,omitempty"`
}

// MissingForPublish lists what keeps the course from being published: title,
// description, imageUrl and at least one published chapter.
func (c *Course) MissingForPublish() []string {
	var missing []string
	if c.Title == "" {
		missing = append(missing, "title")
	}
	if isBlank(c.Description) {
		missing = append(missing, "description")
	}
	if isBlank(c.ImageURL) {
		missing = append(missing, "imageUrl")
	}
	if !c.HasPublishedChapter() {
		missing = append(missing, "publishedChapter")
	}
	return missing
}

// CanPublish reports whether nothing is missing for publication.
func (c *Course) CanPublish() bool {
	return len(c.MissingForPublish()) == 0
}

// HasPublishedChapter reports whether any loaded chapter is published.
func (c *Course) HasPublishedChapter() bool {
	for _, ch := range c.Chapters {
		if ch.IsPublished {
			return true
		}
	}
	return false
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}
