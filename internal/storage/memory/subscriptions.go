package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/magabrotheeeer/tattoo-studio/internal/models"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage"
)

// CreateUserSubscription сохраняет подписку. Существование пользователя и плана
// проверяет вызывающий код; пересечение с активными подписками не проверяется.
func (s *Storage) CreateUserSubscription(ctx context.Context, sub models.UserSubscription) (models.UserSubscription, error) {
	const op = "storage.memory.CreateUserSubscription"
	if err := checkCtx(ctx, op); err != nil {
		return models.UserSubscription{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub.ID = s.subscriptionSeq.next()
	s.subscriptions[sub.ID] = sub
	return sub, nil
}

// ListUserSubscriptions возвращает подписки пользователя в порядке создания.
func (s *Storage) ListUserSubscriptions(ctx context.Context, userID int) ([]models.UserSubscription, error) {
	const op = "storage.memory.ListUserSubscriptions"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.UserSubscription, 0)
	for _, sub := range s.subscriptions {
		if sub.UserID == userID {
			res = append(res, sub)
		}
	}
	slices.SortFunc(res, func(a, b models.UserSubscription) int { return cmp.Compare(a.ID, b.ID) })
	return res, nil
}

// SetUserSubscriptionActive меняет флаг активности подписки.
func (s *Storage) SetUserSubscriptionActive(ctx context.Context, id int, isActive bool) (models.UserSubscription, error) {
	const op = "storage.memory.SetUserSubscriptionActive"
	if err := checkCtx(ctx, op); err != nil {
		return models.UserSubscription{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscriptions[id]
	if !ok {
		return models.UserSubscription{}, fmt.Errorf("%s: subscription %d: %w", op, id, storage.ErrNotFound)
	}
	sub.IsActive = isActive
	s.subscriptions[id] = sub
	return sub, nil
}
