package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/yigit/coursecraft/internal/app/auth"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
	"github.com/yigit/coursecraft/internal/pkg/cache"
	"github.com/yigit/coursecraft/internal/pkg/filestorage"
	"github.com/yigit/coursecraft/internal/pkg/logger"
)

// ChapterService defines the interface for chapter operations
type ChapterService interface {
	CreateChapter(ctx context.Context, userID, courseID string, req *dto.CreateChapterRequest) (*dto.ChapterResponse, error)
	GetChapter(ctx context.Context, userID, courseID, chapterID string) (*dto.ChapterResponse, error)
	UpdateChapter(ctx context.Context, userID, courseID, chapterID string, req *dto.UpdateChapterRequest) (*dto.ChapterResponse, error)
	ReorderChapters(ctx context.Context, userID, courseID string, req *dto.ReorderChaptersRequest) error
	PublishChapter(ctx context.Context, userID, courseID, chapterID string) (*dto.ChapterStateResponse, error)
	UnpublishChapter(ctx context.Context, userID, courseID, chapterID string) (*dto.ChapterStateResponse, error)
	DeleteChapter(ctx context.Context, userID, courseID, chapterID string) (*dto.ChapterStateResponse, error)
	UploadChapterVideo(ctx context.Context, userID, courseID, chapterID string, file *multipart.FileHeader) (*dto.ChapterResponse, error)
}

// chapterServiceImpl implements ChapterService
type chapterServiceImpl struct {
	chapterRepo  ChapterRepository
	authzService *auth.AuthorizationService
	cache        cache.CourseCache
	notifier     ChangeNotifier
	storage      MediaStorage
}

// NewChapterService creates a new ChapterService
func NewChapterService(
	chapterRepo ChapterRepository,
	authzService *auth.AuthorizationService,
	courseCache cache.CourseCache,
	notifier ChangeNotifier,
	storage MediaStorage,
) ChapterService {
	return &chapterServiceImpl{
		chapterRepo:  chapterRepo,
		authzService: authzService,
		cache:        courseCache,
		notifier:     notifier,
		storage:      storage,
	}
}

// CreateChapter appends a new unpublished chapter to the course
func (s *chapterServiceImpl) CreateChapter(ctx context.Context, userID, courseID string, req *dto.CreateChapterRequest) (*dto.ChapterResponse, error) {
	if _, err := s.authzService.OwnedCourse(ctx, userID, courseID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewMissingFieldsError("title")
	}

	chapter := &models.Chapter{CourseID: courseID, Title: title}
	if err := s.chapterRepo.Create(ctx, chapter); err != nil {
		return nil, fmt.Errorf("error creating chapter: %w", err)
	}

	s.changed(ctx, models.ChangeChapterCreated, courseID, chapter.ID)
	logger.Info().Str("courseID", courseID).Str("chapterID", chapter.ID).Int("position", chapter.Position).Msg("Chapter created")

	resp := dto.FromChapter(chapter)
	return &resp, nil
}

// GetChapter returns a chapter of an owned course
func (s *chapterServiceImpl) GetChapter(ctx context.Context, userID, courseID, chapterID string) (*dto.ChapterResponse, error) {
	chapter, err := s.ownedChapter(ctx, userID, courseID, chapterID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromChapter(chapter)
	return &resp, nil
}

// UpdateChapter applies the fields present in req. Publish state and position are untouched.
func (s *chapterServiceImpl) UpdateChapter(ctx context.Context, userID, courseID, chapterID string, req *dto.UpdateChapterRequest) (*dto.ChapterResponse, error) {
	if req.Title == nil && req.Description == nil && req.VideoURL == nil && req.IsFree == nil {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	chapter, err := s.ownedChapter(ctx, userID, courseID, chapterID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewMissingFieldsError("title")
		}
		chapter.Title = title
	}
	if req.Description != nil {
		chapter.Description = req.Description
	}
	if req.VideoURL != nil {
		chapter.VideoURL = req.VideoURL
	}
	if req.IsFree != nil {
		chapter.IsFree = *req.IsFree
	}

	if err := s.chapterRepo.Update(ctx, chapter); err != nil {
		return nil, fmt.Errorf("error updating chapter: %w", err)
	}
	s.changed(ctx, models.ChangeChapterUpdated, courseID, chapterID)

	resp := dto.FromChapter(chapter)
	return &resp, nil
}

// ReorderChapters writes every (id, position) pair atomically. Each id and
// each position may appear once; ids must belong to the course.
func (s *chapterServiceImpl) ReorderChapters(ctx context.Context, userID, courseID string, req *dto.ReorderChaptersRequest) error {
	if _, err := s.authzService.OwnedCourse(ctx, userID, courseID); err != nil {
		return err
	}

	if len(req.List) == 0 {
		return apperrors.NewBadRequestError("List must not be empty")
	}

	seenIDs := make(map[string]bool, len(req.List))
	seenPositions := make(map[int]bool, len(req.List))
	for _, item := range req.List {
		if !auth.IsValidID(item.ID) {
			return apperrors.ErrChapterNotInCourse
		}
		if item.Position < 1 {
			return apperrors.NewBadRequestError("Positions start at 1")
		}
		if seenIDs[item.ID] || seenPositions[item.Position] {
			return apperrors.ErrDuplicateReorderEntry
		}
		seenIDs[item.ID] = true
		seenPositions[item.Position] = true
	}

	if err := s.chapterRepo.Reorder(ctx, courseID, req.Positions()); err != nil {
		return err
	}

	s.changed(ctx, models.ChangeChaptersReordered, courseID, "")
	return nil
}

// PublishChapter publishes a chapter that has a title, description and video
func (s *chapterServiceImpl) PublishChapter(ctx context.Context, userID, courseID, chapterID string) (*dto.ChapterStateResponse, error) {
	chapter, err := s.ownedChapter(ctx, userID, courseID, chapterID)
	if err != nil {
		return nil, err
	}

	if missing := chapter.MissingForPublish(); len(missing) > 0 {
		return nil, apperrors.NewMissingFieldsError(missing...)
	}

	if _, err := s.chapterRepo.SetPublished(ctx, courseID, chapterID, true); err != nil {
		return nil, err
	}
	chapter.IsPublished = true
	s.changed(ctx, models.ChangeChapterPublished, courseID, chapterID)

	resp := dto.FromChapter(chapter)
	return &dto.ChapterStateResponse{Chapter: &resp}, nil
}

// UnpublishChapter hides a chapter. The course is unpublished as well when
// it has no published chapter left.
func (s *chapterServiceImpl) UnpublishChapter(ctx context.Context, userID, courseID, chapterID string) (*dto.ChapterStateResponse, error) {
	chapter, err := s.ownedChapter(ctx, userID, courseID, chapterID)
	if err != nil {
		return nil, err
	}

	courseUnpublished, err := s.chapterRepo.SetPublished(ctx, courseID, chapterID, false)
	if err != nil {
		return nil, err
	}
	chapter.IsPublished = false

	s.changed(ctx, models.ChangeChapterUnpublished, courseID, chapterID)
	if courseUnpublished {
		s.changed(ctx, models.ChangeCourseUnpublished, courseID, "")
	}

	resp := dto.FromChapter(chapter)
	return &dto.ChapterStateResponse{Chapter: &resp, CourseUnpublished: courseUnpublished}, nil
}

// DeleteChapter removes a chapter and its stored video. The course is
// unpublished when no published chapter remains.
func (s *chapterServiceImpl) DeleteChapter(ctx context.Context, userID, courseID, chapterID string) (*dto.ChapterStateResponse, error) {
	chapter, err := s.ownedChapter(ctx, userID, courseID, chapterID)
	if err != nil {
		return nil, err
	}

	courseUnpublished, err := s.chapterRepo.Delete(ctx, courseID, chapterID)
	if err != nil {
		return nil, err
	}
	removeMedia(s.storage, chapter.VideoURL)

	s.changed(ctx, models.ChangeChapterDeleted, courseID, chapterID)
	if courseUnpublished {
		s.changed(ctx, models.ChangeCourseUnpublished, courseID, "")
	}
	logger.Info().Str("courseID", courseID).Str("chapterID", chapterID).Bool("courseUnpublished", courseUnpublished).Msg("Chapter deleted")

	return &dto.ChapterStateResponse{CourseUnpublished: courseUnpublished}, nil
}

// UploadChapterVideo stores a video file and points the chapter at it
func (s *chapterServiceImpl) UploadChapterVideo(ctx context.Context, userID, courseID, chapterID string, file *multipart.FileHeader) (*dto.ChapterResponse, error) {
	chapter, err := s.ownedChapter(ctx, userID, courseID, chapterID)
	if err != nil {
		return nil, err
	}

	url, err := saveMedia(s.storage, file, filestorage.VideoTypes, "courses/"+courseID+"/chapters/"+chapterID)
	if err != nil {
		return nil, err
	}

	previous := chapter.VideoURL
	chapter.VideoURL = &url
	if err := s.chapterRepo.Update(ctx, chapter); err != nil {
		removeMedia(s.storage, &url)
		return nil, fmt.Errorf("error updating chapter video: %w", err)
	}
	removeMedia(s.storage, previous)
	s.changed(ctx, models.ChangeChapterUpdated, courseID, chapterID)

	resp := dto.FromChapter(chapter)
	return &resp, nil
}

func (s *chapterServiceImpl) ownedChapter(ctx context.Context, userID, courseID, chapterID string) (*models.Chapter, error) {
	if _, err := s.authzService.OwnedCourse(ctx, userID, courseID); err != nil {
		return nil, err
	}
	if !auth.IsValidID(chapterID) {
		return nil, apperrors.ErrChapterNotFound
	}
	return s.chapterRepo.GetByID(ctx, courseID, chapterID)
}

func (s *chapterServiceImpl) changed(ctx context.Context, t models.ChangeType, courseID, chapterID string) {
	s.cache.InvalidateCourse(ctx, courseID)
	s.notifier.Publish(notice(t, courseID, chapterID))
}
