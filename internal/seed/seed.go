package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursecraft/internal/app/models"
)

// DemoUserID is the identity provider id of the seeded teacher
const DemoUserID = "user_demo_teacher"

// UserStore upserts users
type UserStore interface {
	Upsert(ctx context.Context, user *appModels.User) error
}

// CourseStore creates and lists courses
type CourseStore interface {
	Create(ctx context.Context, course *appModels.Course) error
	ListByOwner(ctx context.Context, userID string, offset, limit int) ([]*appModels.Course, int64, error)
	SetPublished(ctx context.Context, id string, published bool) error
}

// ChapterStore creates and publishes chapters
type ChapterStore interface {
	Create(ctx context.Context, chapter *appModels.Chapter) error
	SetPublished(ctx context.Context, courseID, chapterID string, published bool) (bool, error)
}

type demoChapter struct {
	title       string
	description string
	videoURL    string
	free        bool
	publish     bool
}

var demoChapters = []demoChapter{
	{title: "Introduction", description: "<p>What this course covers and how it is organized.</p>", videoURL: "https://videos.example.com/intro.mp4", free: true, publish: true},
	{title: "Variables and types", description: "<p>Declaring values, zero values and <strong>type inference</strong>.</p>", videoURL: "https://videos.example.com/types.mp4", publish: true},
	{title: "Draft: Concurrency"},
}

// CreateDemoData creates a demo teacher with one published course, unless the
// teacher already owns a course. Errors are collected and returned together.
func CreateDemoData(ctx context.Context, users UserStore, courses CourseStore, chapters ChapterStore, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo data...")

	teacher := &appModels.User{
		ID:        DemoUserID,
		Email:     "teacher@coursecraft.dev",
		FirstName: "Demo",
		LastName:  "Teacher",
	}
	if err := users.Upsert(ctx, teacher); err != nil {
		return fmt.Errorf("creating demo teacher: %w", err)
	}

	_, total, err := courses.ListByOwner(ctx, DemoUserID, 0, 1)
	if err != nil {
		return fmt.Errorf("checking demo courses: %w", err)
	}
	if total > 0 {
		lgr.Info().Int64("courses", total).Msg("Demo teacher already has courses, skipping creation")
		return nil
	}

	description := "<p>A short tour of the Go language.</p>"
	imageURL := "https://images.example.com/go-course.png"
	course := &appModels.Course{
		UserID:      DemoUserID,
		Title:       "Go for beginners",
		Description: &description,
		ImageURL:    &imageURL,
	}
	if err := courses.Create(ctx, course); err != nil {
		return fmt.Errorf("creating demo course: %w", err)
	}

	var finalErr error
	published := 0
	for _, dc := range demoChapters {
		ch := &appModels.Chapter{CourseID: course.ID, Title: dc.title, IsFree: dc.free}
		if dc.description != "" {
			desc := dc.description
			ch.Description = &desc
		}
		if dc.videoURL != "" {
			video := dc.videoURL
			ch.VideoURL = &video
		}
		if err := chapters.Create(ctx, ch); err != nil {
			lgr.Error().Err(err).Str("title", dc.title).Msg("Error creating demo chapter")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if !dc.publish {
			continue
		}
		if _, err := chapters.SetPublished(ctx, course.ID, ch.ID, true); err != nil {
			lgr.Error().Err(err).Str("chapterID", ch.ID).Msg("Error publishing demo chapter")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		published++
	}

	if published > 0 {
		if err := courses.SetPublished(ctx, course.ID, true); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Str("courseID", course.ID).Int("publishedChapters", published).Msg("Demo data check/creation finished.")
	return finalErr
}
