package user

import (
	"context"
	"errors"

	"smoothbux-be/internal/logger"
	"smoothbux-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, username, password string) (string, *User, error)
	Register(ctx context.Context, username, password, role string) (*User, error)
	Me(ctx context.Context, userID string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, username, password string) (string, *User, error) {
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		// Same error for unknown user and bad password.
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Username, u.Role)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to sign token", zap.Error(err))
		return "", nil, err
	}

	logger.FromCtx(ctx).Info("user logged in",
		zap.String("username", u.Username),
		zap.String("role", u.Role),
	)

	return token, u, nil
}

func (s *service) Register(ctx context.Context, username, password, role string) (*User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	if role != utils.RoleAdmin && role != utils.RoleCustomer {
		role = utils.RoleCustomer
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, username, hash, role)
}

func (s *service) Me(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByID(ctx, userID)
}
