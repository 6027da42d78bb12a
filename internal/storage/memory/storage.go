// Package memory реализует хранилище сущностей приложения в памяти процесса.
//
// Storage хранит пользователей, тарифные планы, подписки, салоны, сообщения,
// переписки и изображения галереи в отдельных картах с монотонными счётчиками
// идентификаторов.
// Все операции защищены одним RWMutex; составная операция создания сообщения
// с обновлением счётчиков переписки выполняется под одной блокировкой записи.
// Данные живут до завершения процесса.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

// pairKey — составной ключ индекса переписок.
type pairKey struct {
	userID  int
	salonID int
}

// sequence выдаёт идентификаторы, начиная с 1. Идентификаторы не переиспользуются.
type sequence int

func (s *sequence) next() int {
	*s++
	return int(*s)
}

// Storage — хранилище сущностей в памяти.
type Storage struct {
	mu  sync.RWMutex
	now func() time.Time

	users         map[int]models.User
	plans         map[int]models.SubscriptionPlan
	subscriptions map[int]models.UserSubscription
	salons        map[int]models.TattooSalon
	messages      map[int]models.Message
	conversations map[int]models.Conversation
	pairs         map[pairKey]int
	gallery       map[string]models.GalleryImage
	galleryOrder  []string

	userSeq         sequence
	planSeq         sequence
	subscriptionSeq sequence
	salonSeq        sequence
	messageSeq      sequence
	conversationSeq sequence
}

// Option настраивает Storage.
type Option func(*Storage)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

// New создаёт пустое хранилище.
func New(opts ...Option) *Storage {
	s := &Storage{
		now:           time.Now,
		users:         make(map[int]models.User),
		plans:         make(map[int]models.SubscriptionPlan),
		subscriptions: make(map[int]models.UserSubscription),
		salons:        make(map[int]models.TattooSalon),
		messages:      make(map[int]models.Message),
		conversations: make(map[int]models.Conversation),
		pairs:         make(map[pairKey]int),
		gallery:       make(map[string]models.GalleryImage),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func checkCtx(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
		return nil
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
