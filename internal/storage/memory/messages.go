package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

// CreateMessage сохраняет сообщение и обновляет переписку пары (пользователь, салон):
// lastMessageAt становится текущим временем, а unreadCount растёт на 1,
// если сообщение отправлено салоном. Если переписки нет, она создаётся.
// Нулевой Timestamp заменяется текущим временем.
func (s *Storage) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	const op = "storage.memory.CreateMessage"
	if err := checkCtx(ctx, op); err != nil {
		return models.Message{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if msg.Timestamp.IsZero() {
		msg.Timestamp = now
	}
	msg.ID = s.messageSeq.next()
	s.messages[msg.ID] = msg

	increment := 0
	if !msg.IsFromUser {
		increment = 1
	}

	key := pairKey{userID: msg.UserID, salonID: msg.SalonID}
	if id, ok := s.pairs[key]; ok {
		conv := s.conversations[id]
		conv.LastMessageAt = now
		conv.UnreadCount += increment
		s.conversations[id] = conv
		return msg, nil
	}

	s.insertConversationLocked(models.Conversation{
		UserID:        msg.UserID,
		SalonID:       msg.SalonID,
		LastMessageAt: now,
		UnreadCount:   increment,
	})
	return msg, nil
}

// ListMessages возвращает переписку пары по возрастанию времени, при равном времени по ID.
func (s *Storage) ListMessages(ctx context.Context, userID, salonID int) ([]models.Message, error) {
	const op = "storage.memory.ListMessages"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.Message, 0)
	for _, m := range s.messages {
		if m.UserID == userID && m.SalonID == salonID {
			res = append(res, m)
		}
	}
	slices.SortFunc(res, func(a, b models.Message) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return res, nil
}
