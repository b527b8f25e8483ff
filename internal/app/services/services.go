package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/pkg/websocket"
)

// Repository contracts. The pgx repositories in internal/app/repositories
// satisfy them; tests use in-memory fakes.

// CourseRepository persists courses
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	ListByOwner(ctx context.Context, userID string, offset, limit int) ([]*models.Course, int64, error)
	Update(ctx context.Context, course *models.Course) error
	SetPublished(ctx context.Context, id string, published bool) error
	Delete(ctx context.Context, id string) error
}

// ChapterRepository persists chapters. SetPublished and Delete report whether
// the course was unpublished because no published chapter remained.
type ChapterRepository interface {
	Create(ctx context.Context, chapter *models.Chapter) error
	GetByID(ctx context.Context, courseID, chapterID string) (*models.Chapter, error)
	ListByCourse(ctx context.Context, courseID string) ([]*models.Chapter, error)
	Update(ctx context.Context, chapter *models.Chapter) error
	Reorder(ctx context.Context, courseID string, list []models.ChapterPosition) error
	SetPublished(ctx context.Context, courseID, chapterID string, published bool) (bool, error)
	Delete(ctx context.Context, courseID, chapterID string) (bool, error)
}

// UserRepository persists users mirrored from the identity provider
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// ChangeNotifier pushes change notices to live clients
type ChangeNotifier interface {
	Publish(notice websocket.Notice)
}

// MediaStorage stores uploaded course media
type MediaStorage interface {
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)
	DeleteFile(fileURL string) error
}

func notice(t models.ChangeType, courseID, chapterID string) websocket.Notice {
	return websocket.Notice{
		Type:      string(t),
		CourseID:  courseID,
		ChapterID: chapterID,
		Timestamp: time.Now().UTC(),
	}
}
