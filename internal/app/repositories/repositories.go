package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/coursecraft/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	CourseRepository   *CourseRepository
	ChapterRepository  *ChapterRepository
	EventRunRepository *EventRunRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(database),
		CourseRepository:   NewCourseRepository(database),
		ChapterRepository:  NewChapterRepository(database),
		EventRunRepository: NewEventRunRepository(database),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
