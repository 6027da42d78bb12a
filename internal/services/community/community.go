// Package community содержит логику каталога салонов и переписки пользователей с салонами.
package community

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/tattoo-studio/internal/events"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/sl"
	"github.com/magabrotheeeer/tattoo-studio/internal/metrics"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

// Repository определяет методы хранилища, нужные сервису.
type Repository interface {
	GetUser(ctx context.Context, id int) (models.User, error)
	GetSalon(ctx context.Context, id int) (models.TattooSalon, error)
	ListSalons(ctx context.Context, filter models.SalonFilter) ([]models.TattooSalon, error)
	CreateMessage(ctx context.Context, msg models.Message) (models.Message, error)
	ListMessages(ctx context.Context, userID, salonID int) ([]models.Message, error)
	MarkConversationRead(ctx context.Context, userID, salonID int) error
	ListConversations(ctx context.Context, userID int) ([]models.ConversationWithSalon, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Publisher публикует доменные события.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Service реализует каталог салонов и чат.
type Service struct {
	repo      Repository
	cache     Cache
	publisher Publisher
	metrics   *metrics.Metrics
	log       *slog.Logger
	ttl       time.Duration
}

// NewService создаёт сервис. ttl задаёт время жизни записей кэша.
func NewService(repo Repository, cache Cache, publisher Publisher, m *metrics.Metrics, log *slog.Logger, ttl time.Duration) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		metrics:   m,
		log:       log,
		ttl:       ttl,
	}
}

func salonCacheKey(id int) string {
	return fmt.Sprintf("salon:%d", id)
}

// Salons возвращает салоны, подходящие под фильтр.
func (s *Service) Salons(ctx context.Context, filter models.SalonFilter) ([]models.TattooSalon, error) {
	const op = "services.community.Salons"

	salons, err := s.repo.ListSalons(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return salons, nil
}

// Salon возвращает салон по ID, используя кэш.
func (s *Service) Salon(ctx context.Context, id int) (models.TattooSalon, error) {
	const op = "services.community.Salon"
	key := salonCacheKey(id)

	var salon models.TattooSalon
	found, err := s.cache.Get(ctx, key, &salon)
	if err != nil {
		s.log.Warn("failed to read salon from cache", slog.String("op", op), slog.String("key", key), sl.Err(err))
	}
	if found {
		return salon, nil
	}

	salon, err = s.repo.GetSalon(ctx, id)
	if err != nil {
		return models.TattooSalon{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, key, salon, s.ttl); err != nil {
		s.log.Warn("failed to cache salon", slog.String("op", op), slog.String("key", key), sl.Err(err))
	}
	return salon, nil
}

// Conversations возвращает переписки пользователя вместе с салонами.
func (s *Service) Conversations(ctx context.Context, userID int) ([]models.ConversationWithSalon, error) {
	const op = "services.community.Conversations"

	convs, err := s.repo.ListConversations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return convs, nil
}

// Messages возвращает историю переписки и сбрасывает счётчик непрочитанных.
// Если сброс не удался, уже прочитанная история не возвращается.
func (s *Service) Messages(ctx context.Context, userID, salonID int) ([]models.Message, error) {
	const op = "services.community.Messages"

	msgs, err := s.repo.ListMessages(ctx, userID, salonID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.MarkConversationRead(ctx, userID, salonID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return msgs, nil
}

// SendMessage проверяет существование пользователя и салона и сохраняет сообщение.
// Время сообщения проставляет хранилище.
func (s *Service) SendMessage(ctx context.Context, userID, salonID int, content string, isFromUser bool) (models.Message, error) {
	const op = "services.community.SendMessage"

	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return models.Message{}, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.repo.GetSalon(ctx, salonID); err != nil {
		return models.Message{}, fmt.Errorf("%s: %w", op, err)
	}

	msg, err := s.repo.CreateMessage(ctx, models.Message{
		UserID:     userID,
		SalonID:    salonID,
		Content:    content,
		IsFromUser: isFromUser,
	})
	if err != nil {
		return models.Message{}, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.MessageSent(isFromUser)
	s.log.Debug("message stored", slog.Int("id", msg.ID), slog.Int("user_id", userID), slog.Int("salon_id", salonID))

	event := events.MessageCreated{
		MessageID:  msg.ID,
		UserID:     msg.UserID,
		SalonID:    msg.SalonID,
		IsFromUser: msg.IsFromUser,
		Timestamp:  msg.Timestamp,
	}
	if err := s.publisher.Publish(ctx, events.RoutingMessageCreated, event); err != nil {
		s.log.Warn("failed to publish message event", slog.String("op", op), sl.Err(err))
	}
	return msg, nil
}
