package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/db"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
	"github.com/yigit/coursecraft/internal/pkg/dberrors"
)

var chapterColumns = []string{
	"id", "course_id", "title", "description", "video_url", "position",
	"is_published", "is_free", "created_at", "updated_at",
}

// ChapterRepository handles database operations for chapters
type ChapterRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewChapterRepository creates a new chapter repository
func NewChapterRepository(database *db.PostgresDB) *ChapterRepository {
	return &ChapterRepository{
		db: database,
		sb: statementBuilder(),
	}
}

func scanChapter(row pgx.Row) (*models.Chapter, error) {
	var ch models.Chapter
	err := row.Scan(
		&ch.ID, &ch.CourseID, &ch.Title, &ch.Description, &ch.VideoURL, &ch.Position,
		&ch.IsPublished, &ch.IsFree, &ch.CreatedAt, &ch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// Create appends a chapter at the end of the course: position is one past the
// current maximum, or 1 for the first chapter.
func (r *ChapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	query := `
		INSERT INTO chapters (course_id, title, description, video_url, is_free, position)
		SELECT $1::uuid, $2, $3, $4, $5::boolean, COALESCE(MAX(position), 0) + 1
		FROM chapters
		WHERE course_id = $1::uuid
		RETURNING id, position, is_published, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		chapter.CourseID, chapter.Title, chapter.Description, chapter.VideoURL, chapter.IsFree,
	).Scan(
		&chapter.ID, &chapter.Position, &chapter.IsPublished, &chapter.CreatedAt, &chapter.UpdatedAt,
	)
	if err != nil {
		switch {
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrCourseNotFound
		case dberrors.IsUniqueViolation(err):
			return apperrors.NewConflictError("Another chapter was created at the same time, please retry")
		}
		return fmt.Errorf("error creating chapter: %w", err)
	}
	return nil
}

// GetByID retrieves a chapter scoped to its course
func (r *ChapterRepository) GetByID(ctx context.Context, courseID, chapterID string) (*models.Chapter, error) {
	sql, args, err := r.sb.Select(chapterColumns...).
		From("chapters").
		Where(squirrel.Eq{"id": chapterID, "course_id": courseID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build chapter select query: %w", err)
	}

	chapter, err := scanChapter(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrChapterNotFound
		}
		return nil, fmt.Errorf("error retrieving chapter: %w", err)
	}
	return chapter, nil
}

// ListByCourse returns the chapters of a course ordered by position
func (r *ChapterRepository) ListByCourse(ctx context.Context, courseID string) ([]*models.Chapter, error) {
	sql, args, err := r.sb.Select(chapterColumns...).
		From("chapters").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build chapter list query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing chapters: %w", err)
	}
	defer rows.Close()

	chapters := make([]*models.Chapter, 0)
	for rows.Next() {
		chapter, err := scanChapter(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning chapter: %w", err)
		}
		chapters = append(chapters, chapter)
	}
	return chapters, rows.Err()
}

// Update writes the editable content fields. Position and publish state are
// changed only through Reorder and SetPublished.
func (r *ChapterRepository) Update(ctx context.Context, chapter *models.Chapter) error {
	chapter.UpdatedAt = time.Now().UTC()

	sql, args, err := r.sb.Update("chapters").
		Set("title", chapter.Title).
		Set("description", chapter.Description).
		Set("video_url", chapter.VideoURL).
		Set("is_free", chapter.IsFree).
		Set("updated_at", chapter.UpdatedAt).
		Where(squirrel.Eq{"id": chapter.ID, "course_id": chapter.CourseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build chapter update query: %w", err)
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating chapter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrChapterNotFound
	}
	return nil
}

// Reorder applies every position in one transaction. If any id is not a
// chapter of the course nothing is written.
func (r *ChapterRepository) Reorder(ctx context.Context, courseID string, list []models.ChapterPosition) error {
	ids := make([]string, 0, len(list))
	for _, item := range list {
		ids = append(ids, item.ID)
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		countSQL, countArgs, err := r.sb.Select("COUNT(*)").
			From("chapters").
			Where(squirrel.Eq{"course_id": courseID, "id": ids}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build chapter ownership query: %w", err)
		}

		var owned int
		if err := tx.QueryRow(ctx, countSQL, countArgs...).Scan(&owned); err != nil {
			return fmt.Errorf("error checking chapter ownership: %w", err)
		}
		if owned != len(ids) {
			return apperrors.ErrChapterNotInCourse
		}

		now := time.Now().UTC()
		for _, item := range list {
			sql, args, err := r.sb.Update("chapters").
				Set("position", item.Position).
				Set("updated_at", now).
				Where(squirrel.Eq{"id": item.ID, "course_id": courseID}).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build chapter position query: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("error updating chapter position: %w", err)
			}
		}

		// Deferred unique(course_id, position) fires here rather than at commit
		if _, err := tx.Exec(ctx, "SET CONSTRAINTS uq_chapters_course_position IMMEDIATE"); err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.NewConflictError("Two chapters would share the same position")
			}
			return fmt.Errorf("error checking chapter positions: %w", err)
		}
		return nil
	})
}

// SetPublished flips the chapter's publish flag. Unpublishing the last
// published chapter also unpublishes the course; the returned flag reports
// whether that happened.
func (r *ChapterRepository) SetPublished(ctx context.Context, courseID, chapterID string, published bool) (bool, error) {
	courseUnpublished := false

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("chapters").
			Set("is_published", published).
			Set("updated_at", time.Now().UTC()).
			Where(squirrel.Eq{"id": chapterID, "course_id": courseID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build chapter publish query: %w", err)
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error updating chapter publish state: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrChapterNotFound
		}

		if published {
			return nil
		}
		courseUnpublished, err = r.unpublishCourseIfEmpty(ctx, tx, courseID)
		return err
	})
	if err != nil {
		return false, err
	}
	return courseUnpublished, nil
}

// Delete removes a chapter, closes the gap in positions and unpublishes the
// course when no published chapter is left.
func (r *ChapterRepository) Delete(ctx context.Context, courseID, chapterID string) (bool, error) {
	courseUnpublished := false

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Delete("chapters").
			Where(squirrel.Eq{"id": chapterID, "course_id": courseID}).
			Suffix("RETURNING position").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build chapter delete query: %w", err)
		}

		var position int
		if err := tx.QueryRow(ctx, sql, args...).Scan(&position); err != nil {
			if isNoRows(err) {
				return apperrors.ErrChapterNotFound
			}
			return fmt.Errorf("error deleting chapter: %w", err)
		}

		shiftSQL, shiftArgs, err := r.sb.Update("chapters").
			Set("position", squirrel.Expr("position - 1")).
			Where(squirrel.Eq{"course_id": courseID}).
			Where(squirrel.Gt{"position": position}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build chapter shift query: %w", err)
		}
		if _, err := tx.Exec(ctx, shiftSQL, shiftArgs...); err != nil {
			return fmt.Errorf("error shifting chapter positions: %w", err)
		}

		courseUnpublished, err = r.unpublishCourseIfEmpty(ctx, tx, courseID)
		return err
	})
	if err != nil {
		return false, err
	}
	return courseUnpublished, nil
}

func (r *ChapterRepository) unpublishCourseIfEmpty(ctx context.Context, tx pgx.Tx, courseID string) (bool, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("chapters").
		Where(squirrel.Eq{"course_id": courseID, "is_published": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build published chapter count query: %w", err)
	}

	var published int
	if err := tx.QueryRow(ctx, sql, args...).Scan(&published); err != nil {
		return false, fmt.Errorf("error counting published chapters: %w", err)
	}
	if published > 0 {
		return false, nil
	}

	wasPublished, err := r.isCoursePublished(ctx, tx, courseID)
	if err != nil || !wasPublished {
		return false, err
	}
	if err := setCoursePublished(ctx, r.sb, tx, courseID, false); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ChapterRepository) isCoursePublished(ctx context.Context, tx pgx.Tx, courseID string) (bool, error) {
	sql, args, err := r.sb.Select("is_published").
		From("courses").
		Where(squirrel.Eq{"id": courseID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build course state query: %w", err)
	}

	var published bool
	if err := tx.QueryRow(ctx, sql, args...).Scan(&published); err != nil {
		if isNoRows(err) {
			return false, apperrors.ErrCourseNotFound
		}
		return false, fmt.Errorf("error reading course state: %w", err)
	}
	return published, nil
}
