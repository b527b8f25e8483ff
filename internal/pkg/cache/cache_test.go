package cache

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/coursecraft/internal/app/models"
)

func TestNewCourseCache_DisabledWithoutAddr(t *testing.T) {
	c, closeFn := NewCourseCache(context.Background(), Config{}, zerolog.Nop())
	assert.IsType(t, NopCache{}, c)
	assert.NoError(t, closeFn())
}

func TestNewCourseCache_DisabledWhenUnreachable(t *testing.T) {
	// port 1 is never a redis server
	c, closeFn := NewCourseCache(context.Background(), Config{Addr: "127.0.0.1:1"}, zerolog.Nop())
	assert.IsType(t, NopCache{}, c)
	assert.NoError(t, closeFn())
}

func TestNopCache(t *testing.T) {
	var c CourseCache = NopCache{}
	c.SetCourse(context.Background(), &models.Course{ID: "c1"})

	got, ok := c.GetCourse(context.Background(), "c1")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestCourseKey(t *testing.T) {
	assert.Equal(t, "course:abc", CourseKey("abc"))
}
