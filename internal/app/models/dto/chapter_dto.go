package dto

import (
	"time"

	"github.com/yigit/coursecraft/internal/app/models"
)

// CreateChapterRequest is the body of POST /courses/{courseId}/chapters.
type CreateChapterRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255" example:"Introduction to the course"`
}

// UpdateChapterRequest is a partial chapter update.
type UpdateChapterRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitnil,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	VideoURL    *string `json:"videoUrl,omitempty" binding:"omitnil,url"`
	IsFree      *bool   `json:"isFree,omitempty"`
}

// ReorderItem is one (id, position) pair.
type ReorderItem struct {
	ID       string `json:"id" binding:"required" example:"0b6c..."`
	Position int    `json:"position" binding:"required,gte=1" example:"1"`
}

// ReorderChaptersRequest is the body of PUT /courses/{courseId}/chapters/reorder.
type ReorderChaptersRequest struct {
	List []ReorderItem `json:"list" binding:"required,min=1,dive"`
}

// Positions converts the request into model positions.
func (r *ReorderChaptersRequest) Positions() []models.ChapterPosition {
	out := make([]models.ChapterPosition, 0, len(r.List))
	for _, item := range r.List {
		out = append(out, models.ChapterPosition{ID: item.ID, Position: item.Position})
	}
	return out
}

// ChapterResponse is the wire form of a chapter.
type ChapterResponse struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	VideoURL    *string   `json:"videoUrl,omitempty"`
	Position    int       `json:"position"`
	IsPublished bool      `json:"isPublished"`
	IsFree      bool      `json:"isFree"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromChapter maps a chapter model to its response DTO.
func FromChapter(ch *models.Chapter) ChapterResponse {
	if ch == nil {
		return ChapterResponse{}
	}
	return ChapterResponse{
		ID:          ch.ID,
		CourseID:    ch.CourseID,
		Title:       ch.Title,
		Description: ch.Description,
		VideoURL:    ch.VideoURL,
		Position:    ch.Position,
		IsPublished: ch.IsPublished,
		IsFree:      ch.IsFree,
		CreatedAt:   ch.CreatedAt,
		UpdatedAt:   ch.UpdatedAt,
	}
}

// ChapterStateResponse is returned by publish, unpublish and delete. CourseUnpublished
// is set when the action left the course without published chapters.
type ChapterStateResponse struct {
	Chapter           *ChapterResponse `json:"chapter,omitempty"`
	CourseUnpublished bool             `json:"courseUnpublished"`
}
