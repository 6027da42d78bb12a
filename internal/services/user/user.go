// Package user содержит регистрацию и получение пользователей.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/tattoo-studio/internal/lib/password"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

// maxPasswordBytes — ограничение bcrypt на длину пароля в байтах.
const maxPasswordBytes = 72

// ErrPasswordTooLong возвращается, если пароль длиннее 72 байт в UTF-8.
var ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

// Repository описывает контракт для работы с пользователями в хранилище.
type Repository interface {
	// CreateUser сохраняет пользователя; для занятого имени возвращает storage.ErrUsernameTaken.
	CreateUser(ctx context.Context, username, password string) (models.User, error)
	GetUser(ctx context.Context, id int) (models.User, error)
}

// Service отвечает за регистрацию пользователей.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Register хэширует пароль и создает пользователя.
func (s *Service) Register(ctx context.Context, username, rawPassword string) (models.User, error) {
	const op = "services.user.Register"

	if len(rawPassword) > maxPasswordBytes {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrPasswordTooLong)
	}
	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	u, err := s.repo.CreateUser(ctx, username, hashed)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("registered user", slog.Int("id", u.ID), slog.String("username", u.Username))
	return u, nil
}

// User возвращает пользователя по ID.
func (s *Service) User(ctx context.Context, id int) (models.User, error) {
	const op = "services.user.User"

	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
