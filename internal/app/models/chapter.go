package models

import "time"

// Chapter is an ordered unit of a course. Position is 1-based and unique per course.
type Chapter struct {
	ID          string    `json:"id" db:"id"`
	CourseID    string    `json:"courseId" db:"course_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	VideoURL    *string   `json:"videoUrl,omitempty" db:"video_url"`
	Position    int       `json:"position" db:"position"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	IsFree      bool      `json:"isFree" db:"is_free"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// MissingForPublish lists the empty fields among title, description and videoUrl.
func (c *Chapter) MissingForPublish() []string {
	var missing []string
	if c.Title == "" {
		missing = append(missing, "title")
	}
	if isBlank(c.Description) {
		missing = append(missing, "description")
	}
	if isBlank(c.VideoURL) {
		missing = append(missing, "videoUrl")
	}
	return missing
}

// CanPublish reports whether title, description and video are all present.
func (c *Chapter) CanPublish() bool {
	return len(c.MissingForPublish()) == 0
}

// ChapterPosition is one entry of a reorder request.
type ChapterPosition struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}
