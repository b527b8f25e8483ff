package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
)

// CourseFinder loads a course by id
type CourseFinder interface {
	GetByID(ctx context.Context, id string) (*models.Course, error)
}

// AuthorizationService handles authorization operations
type AuthorizationService struct {
	courses CourseFinder
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(courses CourseFinder) *AuthorizationService {
	return &AuthorizationService{courses: courses}
}

// IsValidID reports whether id has the shape of a course or chapter id.
// Malformed ids are treated as unknown resources rather than bad requests.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// OwnedCourse loads the course and checks that userID owns it
func (s *AuthorizationService) OwnedCourse(ctx context.Context, userID, courseID string) (*models.Course, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !IsValidID(courseID) {
		return nil, apperrors.ErrCourseNotFound
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := CheckOwner(course, userID); err != nil {
		return nil, err
	}
	return course, nil
}

// CheckCourseOwnership returns nil when userID owns the course
func (s *AuthorizationService) CheckCourseOwnership(ctx context.Context, userID, courseID string) error {
	_, err := s.OwnedCourse(ctx, userID, courseID)
	return err
}

// CheckOwner compares an already loaded course with userID
func CheckOwner(course *models.Course, userID string) error {
	if course.UserID != userID {
		return apperrors.NewForbiddenError("You do not own this course")
	}
	return nil
}
