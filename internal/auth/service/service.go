package service

import (
	"context"
	"errors"

	"github.com/dxbsouq/souq-backend/internal/apperror"
	"github.com/dxbsouq/souq-backend/internal/auth"
	"github.com/dxbsouq/souq-backend/internal/auth/db"
	"go.uber.org/zap"
)

var (
	ErrEmailAlreadyTaken  = apperror.NewAppError("user with this email already exists")
	ErrInvalidCredentials = apperror.NewAppError("invalid email or password")
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockauthservice

type Repository interface {
	Create(ctx context.Context, email string, passwordHash []byte) (int, error)
	GetByEmail(ctx context.Context, email string) (*auth.User, error)
}

type PasswordManager interface {
	GenerateHashFromPassword(password []byte) ([]byte, error)
	CompareHashAndPassword(hashedPassword []byte, password []byte) error
}

type TokenManager interface {
	GenerateToken(userID int) (string, error)
}

type service struct {
	repository      Repository
	passwordManager PasswordManager
	tokenManager    TokenManager
	logger          *zap.Logger
}

func New(
	repository Repository,
	passwordManager PasswordManager,
	tokenManager TokenManager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:      repository,
		passwordManager: passwordManager,
		tokenManager:    tokenManager,
		logger:          logger,
	}
}

func (s *service) Register(ctx context.Context, email, password string) (string, error) {
	passHash, err := s.passwordManager.GenerateHashFromPassword([]byte(password))
	if err != nil {
		return "", err
	}

	userID, err := s.repository.Create(ctx, email, passHash)
	if err != nil {
		if errors.Is(err, db.ErrEmailTaken) {
			return "", ErrEmailAlreadyTaken
		}

		s.logger.Error("unexpected error when creating user", zap.Error(err))

		return "", err
	}

	return s.tokenManager.GenerateToken(userID)
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}

		s.logger.Error("unexpected error when fetching user by email", zap.Error(err))

		return "", err
	}

	if err := s.passwordManager.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokenManager.GenerateToken(user.ID)
}
