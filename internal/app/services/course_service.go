package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/yigit/coursecraft/internal/app/auth"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
	"github.com/yigit/coursecraft/internal/pkg/cache"
	"github.com/yigit/coursecraft/internal/pkg/filestorage"
	"github.com/yigit/coursecraft/internal/pkg/helpers"
	"github.com/yigit/coursecraft/internal/pkg/logger"
)

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, userID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context, userID string, page, pageSize int) (*dto.CourseListResponse, error)
	GetCourse(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, userID, courseID string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	PublishCourse(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error)
	UnpublishCourse(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, userID, courseID string) error
	UploadCourseImage(ctx context.Context, userID, courseID string, file *multipart.FileHeader) (*dto.CourseResponse, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo   CourseRepository
	chapterRepo  ChapterRepository
	authzService *auth.AuthorizationService
	cache        cache.CourseCache
	notifier     ChangeNotifier
	storage      MediaStorage
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo CourseRepository,
	chapterRepo ChapterRepository,
	authzService *auth.AuthorizationService,
	courseCache cache.CourseCache,
	notifier ChangeNotifier,
	storage MediaStorage,
) CourseService {
	return &courseServiceImpl{
		courseRepo:   courseRepo,
		chapterRepo:  chapterRepo,
		authzService: authzService,
		cache:        courseCache,
		notifier:     notifier,
		storage:      storage,
	}
}

// CreateCourse creates an unpublished course owned by userID
func (s *courseServiceImpl) CreateCourse(ctx context.Context, userID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewMissingFieldsError("title")
	}

	course := &models.Course{UserID: userID, Title: title}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	logger.Info().Str("courseID", course.ID).Str("userID", userID).Msg("Course created")
	resp := dto.FromCourse(course)
	return &resp, nil
}

// ListCourses returns one page of the user's courses, without chapters
func (s *courseServiceImpl) ListCourses(ctx context.Context, userID string, page, pageSize int) (*dto.CourseListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	courses, total, err := s.courseRepo.ListByOwner(ctx, userID, int(offset), limit)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		items = append(items, dto.FromCourse(c))
	}

	return &dto.CourseListResponse{
		Courses:    items,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// GetCourse returns the course with its chapters ordered by position
func (s *courseServiceImpl) GetCourse(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error) {
	course, err := s.loadCourseWithChapters(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromCourse(course)
	return &resp, nil
}

// UpdateCourse applies the fields present in req. Publish state is untouched.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, userID, courseID string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	course, err := s.authzService.OwnedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewMissingFieldsError("title")
		}
		course.Title = title
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.ImageURL != nil {
		course.ImageURL = req.ImageURL
	}
	if req.Price != nil {
		course.Price = req.Price
	}
	if req.CategoryID != nil {
		course.CategoryID = req.CategoryID
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	s.changed(ctx, models.ChangeCourseUpdated, courseID, "")

	return s.GetCourse(ctx, userID, courseID)
}

// PublishCourse publishes a course that has a title, description, image and
// at least one published chapter
func (s *courseServiceImpl) PublishCourse(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error) {
	course, err := s.loadCourseWithChapters(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	if missing := course.MissingForPublish(); len(missing) > 0 {
		return nil, apperrors.NewMissingFieldsError(missing...)
	}

	if err := s.courseRepo.SetPublished(ctx, courseID, true); err != nil {
		return nil, fmt.Errorf("error publishing course: %w", err)
	}
	course.IsPublished = true
	s.changed(ctx, models.ChangeCoursePublished, courseID, "")

	resp := dto.FromCourse(course)
	return &resp, nil
}

// UnpublishCourse hides a course. It is always allowed.
func (s *courseServiceImpl) UnpublishCourse(ctx context.Context, userID, courseID string) (*dto.CourseResponse, error) {
	course, err := s.loadCourseWithChapters(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.SetPublished(ctx, courseID, false); err != nil {
		return nil, fmt.Errorf("error unpublishing course: %w", err)
	}
	course.IsPublished = false
	s.changed(ctx, models.ChangeCourseUnpublished, courseID, "")

	resp := dto.FromCourse(course)
	return &resp, nil
}

// DeleteCourse removes the course, its chapters and its stored image
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, userID, courseID string) error {
	course, err := s.loadCourseWithChapters(ctx, userID, courseID)
	if err != nil {
		return err
	}

	if err := s.courseRepo.Delete(ctx, courseID); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	s.removeMedia(course.ImageURL)
	for _, ch := range course.Chapters {
		s.removeMedia(ch.VideoURL)
	}

	s.changed(ctx, models.ChangeCourseDeleted, courseID, "")
	logger.Info().Str("courseID", courseID).Str("userID", userID).Msg("Course deleted")
	return nil
}

// UploadCourseImage stores a cover image and points the course at it
func (s *courseServiceImpl) UploadCourseImage(ctx context.Context, userID, courseID string, file *multipart.FileHeader) (*dto.CourseResponse, error) {
	course, err := s.authzService.OwnedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	url, err := saveMedia(s.storage, file, filestorage.ImageTypes, "courses/"+courseID)
	if err != nil {
		return nil, err
	}

	previous := course.ImageURL
	course.ImageURL = &url
	if err := s.courseRepo.Update(ctx, course); err != nil {
		s.removeMedia(&url)
		return nil, fmt.Errorf("error updating course image: %w", err)
	}
	s.removeMedia(previous)
	s.changed(ctx, models.ChangeCourseUpdated, courseID, "")

	return s.GetCourse(ctx, userID, courseID)
}

func (s *courseServiceImpl) loadCourseWithChapters(ctx context.Context, userID, courseID string) (*models.Course, error) {
	if cached, ok := s.cache.GetCourse(ctx, courseID); ok {
		if err := auth.CheckOwner(cached, userID); err != nil {
			return nil, err
		}
		return cached, nil
	}

	course, err := s.authzService.OwnedCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	chapters, err := s.chapterRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error loading chapters: %w", err)
	}
	course.Chapters = chapters

	s.cache.SetCourse(ctx, course)
	return course, nil
}

func (s *courseServiceImpl) changed(ctx context.Context, t models.ChangeType, courseID, chapterID string) {
	s.cache.InvalidateCourse(ctx, courseID)
	s.notifier.Publish(notice(t, courseID, chapterID))
}

func (s *courseServiceImpl) removeMedia(url *string) {
	removeMedia(s.storage, url)
}

// saveMedia checks the upload's content type and stores it under subPath
func saveMedia(storage MediaStorage, file *multipart.FileHeader, allowed []string, subPath string) (string, error) {
	if file == nil {
		return "", apperrors.NewBadRequestError("A file is required")
	}
	if _, err := filestorage.DetectContentType(file, allowed); err != nil {
		if errors.Is(err, filestorage.ErrUnsupportedType) {
			return "", apperrors.NewBadRequestError(fmt.Sprintf("Unsupported file type, allowed: %s", strings.Join(allowed, ", ")))
		}
		return "", err
	}

	url, err := storage.SaveFile(file, subPath)
	if err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return url, nil
}

// removeMedia deletes a stored file, logging failures. External URLs are ignored by the storage.
func removeMedia(storage MediaStorage, url *string) {
	if url == nil || *url == "" {
		return
	}
	if err := storage.DeleteFile(*url); err != nil {
		logger.Warn().Err(err).Str("url", *url).Msg("Failed to delete stored file")
	}
}
