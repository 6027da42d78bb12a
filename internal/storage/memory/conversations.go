package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/magabrotheeeer/tattoo-studio/internal/models"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage"
)

func (s *Storage) insertConversationLocked(conv models.Conversation) models.Conversation {
	conv.ID = s.conversationSeq.next()
	s.conversations[conv.ID] = conv
	s.pairs[pairKey{userID: conv.UserID, salonID: conv.SalonID}] = conv.ID
	return conv
}

// CreateConversation создаёт переписку для пары. Вторая переписка для той же пары
// не создаётся: возвращается storage.ErrConversationExists.
func (s *Storage) CreateConversation(ctx context.Context, conv models.Conversation) (models.Conversation, error) {
	const op = "storage.memory.CreateConversation"
	if err := checkCtx(ctx, op); err != nil {
		return models.Conversation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pairs[pairKey{userID: conv.UserID, salonID: conv.SalonID}]; ok {
		return models.Conversation{}, fmt.Errorf("%s: user %d, salon %d: %w",
			op, conv.UserID, conv.SalonID, storage.ErrConversationExists)
	}
	return s.insertConversationLocked(conv), nil
}

// GetConversation возвращает переписку пары (пользователь, салон).
func (s *Storage) GetConversation(ctx context.Context, userID, salonID int) (models.Conversation, error) {
	const op = "storage.memory.GetConversation"
	if err := checkCtx(ctx, op); err != nil {
		return models.Conversation{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.pairs[pairKey{userID: userID, salonID: salonID}]
	if !ok {
		return models.Conversation{}, fmt.Errorf("%s: user %d, salon %d: %w", op, userID, salonID, storage.ErrNotFound)
	}
	return s.conversations[id], nil
}

// SetConversationCounters задаёт время последнего сообщения и число непрочитанных.
func (s *Storage) SetConversationCounters(ctx context.Context, id int, lastMessageAt time.Time, unreadCount int) (models.Conversation, error) {
	const op = "storage.memory.SetConversationCounters"
	if err := checkCtx(ctx, op); err != nil {
		return models.Conversation{}, err
	}
	if unreadCount < 0 {
		return models.Conversation{}, fmt.Errorf("%s: negative unread count %d", op, unreadCount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return models.Conversation{}, fmt.Errorf("%s: conversation %d: %w", op, id, storage.ErrNotFound)
	}
	conv.LastMessageAt = lastMessageAt
	conv.UnreadCount = unreadCount
	s.conversations[id] = conv
	return conv, nil
}

// MarkConversationRead обнуляет счётчик непрочитанных для пары.
// Если переписки нет, ничего не делает.
func (s *Storage) MarkConversationRead(ctx context.Context, userID, salonID int) error {
	const op = "storage.memory.MarkConversationRead"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.pairs[pairKey{userID: userID, salonID: salonID}]
	if !ok {
		return nil
	}
	conv := s.conversations[id]
	conv.UnreadCount = 0
	s.conversations[id] = conv
	return nil
}

// ListConversations возвращает переписки пользователя вместе с салонами.
// Для отсутствующего салона возвращается storage.ErrNotFound, а не пустой салон.
func (s *Storage) ListConversations(ctx context.Context, userID int) ([]models.ConversationWithSalon, error) {
	const op = "storage.memory.ListConversations"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	convs := make([]models.Conversation, 0)
	for _, c := range s.conversations {
		if c.UserID == userID {
			convs = append(convs, c)
		}
	}
	slices.SortFunc(convs, func(a, b models.Conversation) int { return cmp.Compare(a.ID, b.ID) })

	res := make([]models.ConversationWithSalon, 0, len(convs))
	for _, c := range convs {
		salon, ok := s.salons[c.SalonID]
		if !ok {
			return nil, fmt.Errorf("%s: conversation %d references salon %d: %w", op, c.ID, c.SalonID, storage.ErrNotFound)
		}
		res = append(res, models.ConversationWithSalon{Conversation: c, Salon: cloneSalon(salon)})
	}
	return res, nil
}
