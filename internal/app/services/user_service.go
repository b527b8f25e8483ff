package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
)

// UserService defines the interface for user operations
type UserService interface {
	SyncUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type userServiceImpl struct {
	userRepo UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// SyncUser mirrors a user from the identity provider, inserting or updating it
func (s *userServiceImpl) SyncUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = strings.TrimSpace(user.ID)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	var missing []string
	if user.ID == "" {
		missing = append(missing, "id")
	}
	if user.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewMissingFieldsError(missing...)
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("error saving user: %w", err)
	}
	return user, nil
}

// GetUser returns the profile of the authenticated user
func (s *userServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}
