package service

import (
	"context"

	"github.com/campuskit/rollcall/internal/auth/domain"
	"github.com/campuskit/rollcall/internal/auth/store"
)

type UserService struct {
	Store store.Store
}

// ListUsers returns all users.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
