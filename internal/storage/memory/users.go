package memory

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/tattoo-studio/internal/models"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage"
)

// CreateUser добавляет пользователя. Уникальность имени проверяется под блокировкой записи.
func (s *Storage) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	const op = "storage.memory.CreateUser"
	if err := checkCtx(ctx, op); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUsernameTaken)
		}
	}

	user := models.User{
		ID:       s.userSeq.next(),
		Username: username,
		Password: password,
	}
	s.users[user.ID] = user
	return user, nil
}

// GetUser возвращает пользователя по ID.
func (s *Storage) GetUser(ctx context.Context, id int) (models.User, error) {
	const op = "storage.memory.GetUser"
	if err := checkCtx(ctx, op); err != nil {
		return models.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("%s: user %d: %w", op, id, storage.ErrNotFound)
	}
	return user, nil
}

// GetUserByUsername возвращает пользователя по имени.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	const op = "storage.memory.GetUserByUsername"
	if err := checkCtx(ctx, op); err != nil {
		return models.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("%s: user %q: %w", op, username, storage.ErrNotFound)
}
