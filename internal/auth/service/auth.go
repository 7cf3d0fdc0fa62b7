package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/campuskit/rollcall/internal/auth/domain"
	"github.com/campuskit/rollcall/internal/auth/store"
	"github.com/campuskit/rollcall/pkg/cryptox"
	"github.com/campuskit/rollcall/pkg/jwtx"
	"github.com/campuskit/rollcall/pkg/slogx"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password. Callers must not distinguish the two cases in responses, so
// usernames cannot be enumerated through the login endpoint.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles registration and login.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	TokenTTL time.Duration
}

// Register validates the requested role, hashes the password and creates
// the user. Role violations surface as domain.ErrRoleNameAdmin or
// domain.ErrRoleNameTooLong; a taken username as store.ErrAlreadyExists.
func (s *AuthService) Register(ctx context.Context, username, password, rawRole string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	roleName, err := domain.NormalizeRoleName(rawRole)
	if err != nil {
		log.Warn("registration rejected", slog.String("username", username), slog.Any("error", err))
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user, err := s.Store.Users().CreateUser(ctx, domain.User{
		Username:     username,
		PasswordHash: hash,
		RoleName:     roleName,
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
		slog.String("role_name", user.RoleName),
	)
	return user, nil
}

// Login verifies the credentials against the stored hash and, on success,
// issues a signed token for the user. Both lookup misses and hash
// mismatches collapse to ErrInvalidCredentials; the cause is logged, never
// returned.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("login attempt for unknown username")
			return domain.User{}, "", ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login attempt with wrong password", slog.Int64("user_id", user.ID))
		return domain.User{}, "", ErrInvalidCredentials
	}

	claims := jwtx.NewClaims(user.ID, user.Username, user.RoleName, s.TokenTTL, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign token", slog.Any("error", err))
		return domain.User{}, "", err
	}

	return user, token, nil
}
