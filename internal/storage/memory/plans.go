package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/magabrotheeeer/tattoo-studio/internal/models"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage"
)

func clonePlan(p models.SubscriptionPlan) models.SubscriptionPlan {
	p.Features = cloneStrings(p.Features)
	return p
}

// CreatePlan добавляет тарифный план и возвращает его с присвоенным ID.
func (s *Storage) CreatePlan(ctx context.Context, plan models.SubscriptionPlan) (models.SubscriptionPlan, error) {
	const op = "storage.memory.CreatePlan"
	if err := checkCtx(ctx, op); err != nil {
		return models.SubscriptionPlan{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plan = clonePlan(plan)
	plan.ID = s.planSeq.next()
	s.plans[plan.ID] = plan
	return clonePlan(plan), nil
}

// GetPlan возвращает тарифный план по ID.
func (s *Storage) GetPlan(ctx context.Context, id int) (models.SubscriptionPlan, error) {
	const op = "storage.memory.GetPlan"
	if err := checkCtx(ctx, op); err != nil {
		return models.SubscriptionPlan{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	plan, ok := s.plans[id]
	if !ok {
		return models.SubscriptionPlan{}, fmt.Errorf("%s: plan %d: %w", op, id, storage.ErrNotFound)
	}
	return clonePlan(plan), nil
}

// ListPlans возвращает все планы в порядке создания.
func (s *Storage) ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	const op = "storage.memory.ListPlans"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.SubscriptionPlan, 0, len(s.plans))
	for _, p := range s.plans {
		res = append(res, clonePlan(p))
	}
	slices.SortFunc(res, func(a, b models.SubscriptionPlan) int { return cmp.Compare(a.ID, b.ID) })
	return res, nil
}
