package services

import (
	"context"
	"strings"

	"folio/internal/access"
	apperrors "folio/internal/errors"
	"folio/internal/models"
	"folio/internal/store"
)

// userService handles user lookups.
type userService struct {
	repo *store.Repository
}

// NewUserService creates a new UserServicer.
func NewUserService(repo *store.Repository) UserServicer {
	return &userService{repo: repo}
}

// GetUserByID retrieves a user by id.
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email, case-insensitively.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns every user, newest first. Only super users may list users.
func (s *userService) ListUsers(ctx context.Context, actorID string) ([]models.User, error) {
	actor, err := s.GetUserByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !access.CanViewAllUsers(*actor) {
		return nil, apperrors.WithMessage(apperrors.ErrForbidden, "Only super users can list users")
	}
	return s.repo.ListUsers(ctx)
}
