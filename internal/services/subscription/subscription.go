// Package subscription содержит бизнес-логику тарифных планов и подписок пользователей.
package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/tattoo-studio/internal/events"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/month"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/sl"
	"github.com/magabrotheeeer/tattoo-studio/internal/metrics"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

// plansCacheKey — ключ кэша списка планов.
const plansCacheKey = "plans:all"

// Repository определяет методы хранилища, нужные сервису.
type Repository interface {
	GetUser(ctx context.Context, id int) (models.User, error)
	ListPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	GetPlan(ctx context.Context, id int) (models.SubscriptionPlan, error)
	CreateUserSubscription(ctx context.Context, sub models.UserSubscription) (models.UserSubscription, error)
	ListUserSubscriptions(ctx context.Context, userID int) ([]models.UserSubscription, error)
	SetUserSubscriptionActive(ctx context.Context, id int, isActive bool) (models.UserSubscription, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Publisher публикует доменные события.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Service реализует работу с планами и подписками.
type Service struct {
	repo      Repository
	cache     Cache
	publisher Publisher
	metrics   *metrics.Metrics
	log       *slog.Logger
	ttl       time.Duration
	now       func() time.Time
}

// NewService создаёт сервис подписок. ttl задаёт время жизни записей кэша.
func NewService(repo Repository, cache Cache, publisher Publisher, m *metrics.Metrics, log *slog.Logger, ttl time.Duration) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		metrics:   m,
		log:       log,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Plans возвращает все тарифные планы, используя кэш.
func (s *Service) Plans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	const op = "services.subscription.Plans"

	var plans []models.SubscriptionPlan
	found, err := s.cache.Get(ctx, plansCacheKey, &plans)
	if err != nil {
		s.log.Warn("failed to read plans from cache", slog.String("op", op), sl.Err(err))
	}
	if found {
		return plans, nil
	}

	plans, err = s.repo.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, plansCacheKey, plans, s.ttl); err != nil {
		s.log.Warn("failed to cache plans", slog.String("op", op), sl.Err(err))
	}
	return plans, nil
}

// UserSubscriptions возвращает подписки пользователя вместе с планами.
// Для подписки со ссылкой на несуществующий план возвращается storage.ErrNotFound.
func (s *Service) UserSubscriptions(ctx context.Context, userID int) ([]models.SubscriptionWithPlan, error) {
	const op = "services.subscription.UserSubscriptions"

	subs, err := s.repo.ListUserSubscriptions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := make([]models.SubscriptionWithPlan, 0, len(subs))
	for _, sub := range subs {
		plan, err := s.repo.GetPlan(ctx, sub.PlanID)
		if err != nil {
			return nil, fmt.Errorf("%s: subscription %d: %w", op, sub.ID, err)
		}
		res = append(res, models.SubscriptionWithPlan{UserSubscription: sub, Plan: plan})
	}
	return res, nil
}

// Subscribe оформляет подписку пользователя на план сроком в один календарный месяц.
// Уже активные подписки пользователя не проверяются и не закрываются.
func (s *Service) Subscribe(ctx context.Context, userID, planID int) (models.SubscribeResult, error) {
	const op = "services.subscription.Subscribe"

	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return models.SubscribeResult{}, fmt.Errorf("%s: %w", op, err)
	}
	plan, err := s.repo.GetPlan(ctx, planID)
	if err != nil {
		return models.SubscribeResult{}, fmt.Errorf("%s: %w", op, err)
	}

	start := s.now()
	sub, err := s.repo.CreateUserSubscription(ctx, models.UserSubscription{
		UserID:    userID,
		PlanID:    planID,
		StartDate: start,
		EndDate:   month.Add(start, 1),
		IsActive:  true,
	})
	if err != nil {
		return models.SubscribeResult{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new subscription", slog.Int("id", sub.ID), slog.Int("user_id", userID), slog.Int("plan_id", planID))
	s.metrics.SubscriptionsCreated.Inc()

	event := events.SubscriptionCreated{
		SubscriptionID: sub.ID,
		UserID:         sub.UserID,
		PlanID:         sub.PlanID,
		EndDate:        sub.EndDate,
	}
	if err := s.publisher.Publish(ctx, events.RoutingSubscriptionCreated, event); err != nil {
		s.log.Warn("failed to publish subscription event", slog.String("op", op), sl.Err(err))
	}

	return models.SubscribeResult{Subscription: sub, Plan: plan}, nil
}

// Cancel снимает флаг активности с подписки.
func (s *Service) Cancel(ctx context.Context, subscriptionID int) (models.UserSubscription, error) {
	const op = "services.subscription.Cancel"

	sub, err := s.repo.SetUserSubscriptionActive(ctx, subscriptionID, false)
	if err != nil {
		return models.UserSubscription{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("cancelled subscription", slog.Int("id", sub.ID))
	return sub, nil
}
