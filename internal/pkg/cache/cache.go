package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/yigit/coursecraft/internal/app/models"
)

// CourseCache caches course details together with their chapters
type CourseCache interface {
	GetCourse(ctx context.Context, courseID string) (*models.Course, bool)
	SetCourse(ctx context.Context, course *models.Course)
	InvalidateCourse(ctx context.Context, courseID string)
}

// Config holds the redis connection settings
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewCourseCache connects to redis. With an empty address, or when redis
// does not answer, caching is disabled and a no-op cache is returned.
func NewCourseCache(ctx context.Context, cfg Config, logger zerolog.Logger) (CourseCache, func() error) {
	if cfg.Addr == "" {
		logger.Info().Msg("Redis address not set, course cache disabled")
		return NopCache{}, func() error { return nil }
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Error().Err(err).Str("addr", cfg.Addr).Msg("Failed to connect to Redis, course cache disabled")
		_ = client.Close()
		return NopCache{}, func() error { return nil }
	}

	logger.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")
	return NewRedisCourseCache(client, cfg.TTL, logger), client.Close
}

// RedisCourseCache stores courses as JSON under "course:<id>"
type RedisCourseCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisCourseCache wraps an existing redis client
func NewRedisCourseCache(client redis.Cmdable, ttl time.Duration, logger zerolog.Logger) *RedisCourseCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCourseCache{client: client, ttl: ttl, logger: logger}
}

// CourseKey is the redis key of a cached course
func CourseKey(courseID string) string {
	return fmt.Sprintf("course:%s", courseID)
}

// GetCourse returns the cached course. Cache errors count as misses.
func (c *RedisCourseCache) GetCourse(ctx context.Context, courseID string) (*models.Course, bool) {
	data, err := c.client.Get(ctx, CourseKey(courseID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("courseID", courseID).Msg("Redis GET failed")
		}
		return nil, false
	}

	var course models.Course
	if err := json.Unmarshal(data, &course); err != nil {
		c.logger.Warn().Err(err).Str("courseID", courseID).Msg("Discarding undecodable cache entry")
		c.InvalidateCourse(ctx, courseID)
		return nil, false
	}
	return &course, true
}

// SetCourse stores the course with the configured TTL
func (c *RedisCourseCache) SetCourse(ctx context.Context, course *models.Course) {
	data, err := json.Marshal(course)
	if err != nil {
		c.logger.Warn().Err(err).Str("courseID", course.ID).Msg("Failed to encode course for cache")
		return
	}
	if err := c.client.Set(ctx, CourseKey(course.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("courseID", course.ID).Msg("Redis SET failed")
	}
}

// InvalidateCourse drops the cached course
func (c *RedisCourseCache) InvalidateCourse(ctx context.Context, courseID string) {
	if err := c.client.Del(ctx, CourseKey(courseID)).Err(); err != nil {
		c.logger.Warn().Err(err).Str("courseID", courseID).Msg("Redis DEL failed")
	}
}

// NopCache never stores anything
type NopCache struct{}

func (NopCache) GetCourse(context.Context, string) (*models.Course, bool) { return nil, false }
func (NopCache) SetCourse(context.Context, *models.Course) {}
func (NopCache) InvalidateCourse(context.Context, string) {}
