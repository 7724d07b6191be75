package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"railbook/internal/errors"
	"railbook/internal/model"
	"railbook/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates a new user with a hashed password. The username is
// checked first so a duplicate gets a deterministic conflict; the store's
// unique index backstops a racing insert, which maps to the same conflict.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, errors.ErrUserExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		slog.Error("register lookup failed", "op", "register", "username", username, "error", err)
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrUserExists
		}
		slog.Error("register insert failed", "op", "register", "username", username, "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate looks up the username and compares the password hash.
// Unknown user and wrong password both report invalid credentials.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			slog.Error("login lookup failed", "op", "login", "username", username, "error", err)
		}
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}
