package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/db"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
		sb: statementBuilder(),
	}
}

// Upsert inserts the user or refreshes the profile fields of an existing one.
// CreatedAt is preserved across updates.
func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()

	sql, args, err := r.sb.Insert("users").
		Columns("id", "email", "first_name", "last_name", "image_url", "created_at", "updated_at").
		Values(user.ID, user.Email, user.FirstName, user.LastName, user.ImageURL, now, now).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			image_url = EXCLUDED.image_url,
			updated_at = EXCLUDED.updated_at
			RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user upsert query: %w", err)
	}

	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		return fmt.Errorf("error upserting user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by the identity provider id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "email", "COALESCE(first_name, '')", "COALESCE(last_name, '')", "image_url", "created_at", "updated_at").
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user select query: %w", err)
	}

	var user models.User
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.ImageURL, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &user, nil
}
