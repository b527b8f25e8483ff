package services

import (
	"context"
	"fmt"

	"github.com/yigit/coursecraft/internal/app/auth"
	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
	"github.com/yigit/coursecraft/internal/pkg/richtext"
)

// PreviewService renders stored rich text for read-only display
type PreviewService interface {
	CoursePreview(ctx context.Context, userID, courseID string) (*dto.PreviewResponse, error)
	ChapterPreview(ctx context.Context, userID, courseID, chapterID string) (*dto.PreviewResponse, error)
}

type previewServiceImpl struct {
	courseRepo  CourseRepository
	chapterRepo ChapterRepository
}

// NewPreviewService creates a new PreviewService
func NewPreviewService(courseRepo CourseRepository, chapterRepo ChapterRepository) PreviewService {
	return &previewServiceImpl{courseRepo: courseRepo, chapterRepo: chapterRepo}
}

// CoursePreview renders the course description. The owner can always
// preview; other users only once the course is published.
func (s *previewServiceImpl) CoursePreview(ctx context.Context, userID, courseID string) (*dto.PreviewResponse, error) {
	if !auth.IsValidID(courseID) {
		return nil, apperrors.ErrCourseNotFound
	}
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.UserID != userID && !course.IsPublished {
		return nil, apperrors.ErrCourseNotFound
	}
	return render(course.Description)
}

// ChapterPreview renders the chapter description. Non-owners need both the
// course and the chapter to be published.
func (s *previewServiceImpl) ChapterPreview(ctx context.Context, userID, courseID, chapterID string) (*dto.PreviewResponse, error) {
	if !auth.IsValidID(courseID) {
		return nil, apperrors.ErrCourseNotFound
	}
	if !auth.IsValidID(chapterID) {
		return nil, apperrors.ErrChapterNotFound
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	chapter, err := s.chapterRepo.GetByID(ctx, courseID, chapterID)
	if err != nil {
		return nil, err
	}
	if course.UserID != userID && !(course.IsPublished && chapter.IsPublished) {
		return nil, apperrors.ErrChapterNotFound
	}
	return render(chapter.Description)
}

func render(content *string) (*dto.PreviewResponse, error) {
	src := ""
	if content != nil {
		src = *content
	}

	doc, err := richtext.Render(src, richtext.FormatAuto)
	if err != nil {
		return nil, fmt.Errorf("error rendering preview: %w", err)
	}
	return &dto.PreviewResponse{HTML: doc.HTML, Text: doc.Text, Empty: doc.Empty}, nil
}
