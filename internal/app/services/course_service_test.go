package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursecraft/internal/app/auth"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
	"github.com/yigit/coursecraft/internal/pkg/cache"
)

const (
	ownerID    = "user_owner"
	strangerID = "user_stranger"
)

type testEnv struct {
	store    *store
	notifier *recordingNotifier
	storage  *memoryStorage
	courses  CourseService
	chapters ChapterService
	previews PreviewService
}

func newTestEnv() *testEnv {
	s := newStore()
	courseRepo := fakeCourseRepo{s}
	chapterRepo := fakeChapterRepo{s}
	authz := auth.NewAuthorizationService(courseRepo)
	notifier := &recordingNotifier{}
	storage := &memoryStorage{}

	return &testEnv{
		store:    s,
		notifier: notifier,
		storage:  storage,
		courses:  NewCourseService(courseRepo, chapterRepo, authz, cache.NopCache{}, notifier, storage),
		chapters: NewChapterService(chapterRepo, authz, cache.NopCache{}, notifier, storage),
		previews: NewPreviewService(courseRepo, chapterRepo),
	}
}

func (e *testEnv) createCourse(t *testing.T, title string) *dto.CourseResponse {
	t.Helper()
	course, err := e.courses.CreateCourse(context.Background(), ownerID, &dto.CreateCourseRequest{Title: title})
	require.NoError(t, err)
	return course
}

func (e *testEnv) createChapter(t *testing.T, courseID, title string) *dto.ChapterResponse {
	t.Helper()
	ch, err := e.chapters.CreateChapter(context.Background(), ownerID, courseID, &dto.CreateChapterRequest{Title: title})
	require.NoError(t, err)
	return ch
}

// publishableChapter fills in what a chapter needs before it can be published
func (e *testEnv) publishableChapter(t *testing.T, courseID, title string) *dto.ChapterResponse {
	t.Helper()
	ch := e.createChapter(t, courseID, title)
	_, err := e.chapters.UpdateChapter(context.Background(), ownerID, courseID, ch.ID, &dto.UpdateChapterRequest{
		Description: strPtr("<p>about " + title + "</p>"),
		VideoURL:    strPtr("https://cdn.test/" + title + ".mp4"),
	})
	require.NoError(t, err)
	return ch
}

func strPtr(s string) *string { return &s }

func TestCourseService_CreateCourse(t *testing.T) {
	env := newTestEnv()

	course := env.createCourse(t, "  Intro to Go  ")
	assert.NotEmpty(t, course.ID)
	assert.Equal(t, "Intro to Go", course.Title)
	assert.Equal(t, ownerID, course.UserID)
	assert.False(t, course.IsPublished)

	_, err := env.courses.CreateCourse(context.Background(), ownerID, &dto.CreateCourseRequest{Title: "   "})
	assert.ErrorIs(t, err, apperrors.ErrMissingFields)
}

func TestCourseService_UpdateCourse(t *testing.T) {
	env := newTestEnv()
	course := env.createCourse(t, "Go")
	ctx := context.Background()

	t.Run("applies only present fields", func(t *testing.T) {
		updated, err := env.courses.UpdateCourse(ctx, ownerID, course.ID, &dto.UpdateCourseRequest{
			Description: strPtr("this course is about Go"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Go", updated.Title)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "this course is about Go", *updated.Description)
		assert.Contains(t, env.notifier.types(), string(models.ChangeCourseUpdated))
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := env.courses.UpdateCourse(ctx, ownerID, course.ID, &dto.UpdateCourseRequest{})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := env.courses.UpdateCourse(ctx, ownerID, course.ID, &dto.UpdateCourseRequest{Title: strPtr(" ")})
		assert.ErrorIs(t, err, apperrors.ErrMissingFields)
	})

	t.Run("not the owner", func(t *testing.T) {
		_, err := env.courses.UpdateCourse(ctx, strangerID, course.ID, &dto.UpdateCourseRequest{Title: strPtr("mine")})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := env.courses.UpdateCourse(ctx, ownerID, "not-a-uuid", &dto.UpdateCourseRequest{Title: strPtr("x")})
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestCourseService_GetCourse_ChaptersOrdered(t *testing.T) {
	env := newTestEnv()
	course := env.createCourse(t, "Go")
	first := env.createChapter(t, course.ID, "one")
	second := env.createChapter(t, course.ID, "two")

	got, err := env.courses.GetCourse(context.Background(), ownerID, course.ID)
	require.NoError(t, err)
	require.Len(t, got.Chapters, 2)
	assert.Equal(t, first.ID, got.Chapters[0].ID)
	assert.Equal(t, second.ID, got.Chapters[1].ID)
}

func TestCourseService_ListCourses(t *testing.T) {
	env := newTestEnv()
	env.createCourse(t, "A")
	env.createCourse(t, "B")
	env.createCourse(t, "C")
	_, err := env.courses.CreateCourse(context.Background(), strangerID, &dto.CreateCourseRequest{Title: "Other"})
	require.NoError(t, err)

	list, err := env.courses.ListCourses(context.Background(), ownerID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, list.Courses, 2)
	assert.Equal(t, int64(3), list.Pagination.TotalItems)
	assert.Equal(t, 2, list.Pagination.TotalPages)
}

func TestCourseService_PublishCourse(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	course := env.createCourse(t, "Go")

	_, err := env.courses.PublishCourse(ctx, ownerID, course.ID)
	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, "Missing required fields", custom.Message)
	assert.Equal(t, []string{"description", "imageUrl", "publishedChapter"}, custom.Details["fields"])

	_, err = env.courses.UpdateCourse(ctx, ownerID, course.ID, &dto.UpdateCourseRequest{
		Description: strPtr("desc"),
		ImageURL:    strPtr("https://cdn.test/cover.png"),
	})
	require.NoError(t, err)
	ch := env.publishableChapter(t, course.ID, "intro")
	_, err = env.chapters.PublishChapter(ctx, ownerID, course.ID, ch.ID)
	require.NoError(t, err)

	published, err := env.courses.PublishCourse(ctx, ownerID, course.ID)
	require.NoError(t, err)
	assert.True(t, published.IsPublished)

	unpublished, err := env.courses.UnpublishCourse(ctx, ownerID, course.ID)
	require.NoError(t, err)
	assert.False(t, unpublished.IsPublished)
}

func TestCourseService_DeleteCourse(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	course := env.createCourse(t, "Go")
	env.publishableChapter(t, course.ID, "intro")

	require.ErrorIs(t, env.courses.DeleteCourse(ctx, strangerID, course.ID), apperrors.ErrPermissionDenied)
	require.NoError(t, env.courses.DeleteCourse(ctx, ownerID, course.ID))

	_, err := env.courses.GetCourse(ctx, ownerID, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	assert.Equal(t, []string{"https://cdn.test/intro.mp4"}, env.storage.deleted)
	assert.Contains(t, env.notifier.types(), string(models.ChangeCourseDeleted))
}
