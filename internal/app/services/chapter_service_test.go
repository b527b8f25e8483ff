package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
)

func TestChapterService_CreateChapter_AppendsPosition(t *testing.T) {
	env := newTestEnv()
	course := env.createCourse(t, "Go")

	first := env.createChapter(t, course.ID, "one")
	second := env.createChapter(t, course.ID, "two")
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 2, second.Position)
	assert.False(t, first.IsPublished)

	_, err := env.chapters.CreateChapter(context.Background(), strangerID, course.ID, &dto.CreateChapterRequest{Title: "x"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = env.chapters.CreateChapter(context.Background(), ownerID, course.ID, &dto.CreateChapterRequest{Title: ""})
	assert.ErrorIs(t, err, apperrors.ErrMissingFields)
}

func TestChapterService_ReorderChapters(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	course := env.createCourse(t, "Go")
	a := env.createChapter(t, course.ID, "a")
	b := env.createChapter(t, course.ID, "b")
	c := env.createChapter(t, course.ID, "c")

	err := env.chapters.ReorderChapters(ctx, ownerID, course.ID, &dto.ReorderChaptersRequest{List: []dto.ReorderItem{
		{ID: c.ID, Position: 1},
		{ID: a.ID, Position: 2},
		{ID: b.ID, Position: 3},
	}})
	require.NoError(t, err)

	got, err := env.courses.GetCourse(ctx, ownerID, course.ID)
	require.NoError(t, err)
	ids := []string{got.Chapters[0].ID, got.Chapters[1].ID, got.Chapters[2].ID}
	assert.Equal(t, []string{c.ID, a.ID, b.ID}, ids)
	assert.Contains(t, env.notifier.types(), string(models.ChangeChaptersReordered))

	tests := []struct {
		name    string
		list    []dto.ReorderItem
		wantErr error
	}{
		{"empty list", nil, apperrors.ErrBadRequest},
		{"position below one", []dto.ReorderItem{{ID: a.ID, Position: 0}}, apperrors.ErrBadRequest},
		{"duplicate id", []dto.ReorderItem{{ID: a.ID, Position: 1}, {ID: a.ID, Position: 2}}, apperrors.ErrDuplicateReorderEntry},
		{"duplicate position", []dto.ReorderItem{{ID: a.ID, Position: 1}, {ID: b.ID, Position: 1}}, apperrors.ErrDuplicateReorderEntry},
		{"malformed id", []dto.ReorderItem{{ID: "nope", Position: 1}}, apperrors.ErrChapterNotInCourse},
		{"foreign chapter", []dto.ReorderItem{{ID: a.ID, Position: 3}, {ID: uuid.NewString(), Position: 1}}, apperrors.ErrChapterNotInCourse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := env.chapters.ReorderChapters(ctx, ownerID, course.ID, &dto.ReorderChaptersRequest{List: tt.list})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// failed reorders leave positions untouched
	after, err := env.courses.GetCourse(ctx, ownerID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, after.Chapters[0].ID)
	assert.Equal(t, 2, after.Chapters[1].Position)
}

func TestChapterService_PublishChapter_RequiresFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	course := env.createCourse(t, "Go")
	ch := env.createChapter(t, course.ID, "intro")

	_, err := env.chapters.PublishChapter(ctx, ownerID, course.ID, ch.ID)
	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	assert.ErrorIs(t, err, apperrors.ErrMissingFields)
	assert.Equal(t, []string{"description", "videoUrl"}, custom.Details["fields"])

	_, err = env.chapters.UpdateChapter(ctx, ownerID, course.ID, ch.ID, &dto.UpdateChapterRequest{
		Description: strPtr("desc"),
		VideoURL:    strPtr("https://cdn.test/v.mp4"),
	})
	require.NoError(t, err)

	state, err := env.chapters.PublishChapter(ctx, ownerID, course.ID, ch.ID)
	require.NoError(t, err)
	require.NotNil(t, state.Chapter)
	assert.True(t, state.Chapter.IsPublished)
	assert.False(t, state.CourseUnpublished)
}

func TestChapterService_UnpublishLastChapter_UnpublishesCourse(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	course := env.createCourse(t, "Go")
	first := env.publishableChapter(t, course.ID, "one")
	second := env.publishableChapter(t, course.ID, "two")
	for _, id := range []string{first.ID, second.ID} {
		_, err := env.chapters.PublishChapter(ctx, ownerID, course.ID, id)
		require.NoError(t, err)
	}
	require.NoError(t, env.courses.(*courseServiceImpl).courseRepo.SetPublished(ctx, course.ID, true))

	state, err := env.chapters.UnpublishChapter(ctx, ownerID, course.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, state.Chapter.IsPublished)
	assert.False(t, state.CourseUnpublished)

	state, err = env.chapters.UnpublishChapter(ctx, ownerID, course.ID, second.ID)
	require.NoError(t, err)
	assert.True(t, state.CourseUnpublished)

	got, err := env.courses.GetCourse(ctx, ownerID, course.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPublished)
	assert.Contains(t, env.notifier.types(), string(models.ChangeCourseUnpublished))
}

func TestChapterService_DeleteChapter(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	course := env.createCourse(t, "Go")
	a := env.publishableChapter(t, course.ID, "a")
	b := env.createChapter(t, course.ID, "b")
	_, err := env.chapters.PublishChapter(ctx, ownerID, course.ID, a.ID)
	require.NoError(t, err)
	require.NoError(t, env.courses.(*courseServiceImpl).courseRepo.SetPublished(ctx, course.ID, true))

	state, err := env.chapters.DeleteChapter(ctx, ownerID, course.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, state.CourseUnpublished)
	assert.Nil(t, state.Chapter)
	assert.Equal(t, []string{"https://cdn.test/a.mp4"}, env.storage.deleted)

	remaining, err := env.chapters.GetChapter(ctx, ownerID, course.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining.Position)

	_, err = env.chapters.DeleteChapter(ctx, ownerID, course.ID, a.ID)
	assert.ErrorIs(t, err, apperrors.ErrChapterNotFound)

	_, err = env.chapters.DeleteChapter(ctx, strangerID, course.ID, b.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestChapterService_UpdateChapter_KeepsPublishState(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	course := env.createCourse(t, "Go")
	ch := env.publishableChapter(t, course.ID, "a")
	_, err := env.chapters.PublishChapter(ctx, ownerID, course.ID, ch.ID)
	require.NoError(t, err)

	updated, err := env.chapters.UpdateChapter(ctx, ownerID, course.ID, ch.ID, &dto.UpdateChapterRequest{Title: strPtr("renamed")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.True(t, updated.IsPublished)

	_, err = env.chapters.UpdateChapter(ctx, ownerID, course.ID, ch.ID, &dto.UpdateChapterRequest{})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = env.chapters.GetChapter(ctx, ownerID, course.ID, "bad-id")
	assert.ErrorIs(t, err, apperrors.ErrChapterNotFound)
}
