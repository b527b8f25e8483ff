package dto

import (
	"time"

	"github.com/yigit/coursecraft/internal/app/models"
)

// --- Request DTOs ---

// CreateCourseRequest is the body of POST /courses.
type CreateCourseRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255" example:"Intro to Go"`
}

// UpdateCourseRequest is a partial update; nil fields are left untouched.
type UpdateCourseRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitnil,min=1,max=255" example:"Intro to Go"`
	Description *string  `json:"description,omitempty" binding:"omitnil,min=1" example:"this course is about..."`
	ImageURL    *string  `json:"imageUrl,omitempty" binding:"omitnil,url" example:"https://cdn.example.com/cover.png"`
	Price       *float64 `json:"price,omitempty" binding:"omitnil,gte=0" example:"19.99"`
	CategoryID  *string  `json:"categoryId,omitempty" binding:"omitnil,min=1" example:"programming"`
}

// IsEmpty reports whether the request carries no field at all.
func (r *UpdateCourseRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.ImageURL == nil && r.Price == nil && r.CategoryID == nil
}

// --- Response DTOs ---

// CourseResponse is a course with its chapters ordered by position.
type CourseResponse struct {
	ID          string            `json:"id" example:"6f1c..."`
	UserID      string            `json:"userId" example:"user_2abcXYZ"`
	Title       string            `json:"title" example:"Intro to Go"`
	Description *string           `json:"description,omitempty"`
	ImageURL    *string           `json:"imageUrl,omitempty"`
	Price       *float64          `json:"price,omitempty"`
	CategoryID  *string           `json:"categoryId,omitempty"`
	IsPublished bool              `json:"isPublished"`
	Chapters    []ChapterResponse `json:"chapters"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// CourseListResponse is one page of the owner's courses.
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Pagination PaginationInfo   `json:"pagination"`
}

// FromCourse maps a course model to its response DTO.
func FromCourse(course *models.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}
	chapters := make([]ChapterResponse, 0, len(course.Chapters))
	for _, ch := range course.Chapters {
		chapters = append(chapters, FromChapter(ch))
	}
	return CourseResponse{
		ID:          course.ID,
		UserID:      course.UserID,
		Title:       course.Title,
		Description: course.Description,
		ImageURL:    course.ImageURL,
		Price:       course.Price,
		CategoryID:  course.CategoryID,
		IsPublished: course.IsPublished,
		Chapters:    chapters,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}
