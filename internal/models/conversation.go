package models

import "time"

// Conversation — агрегат переписки для пары (пользователь, салон).
// Для каждой пары существует не более одной записи.
type Conversation struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	SalonID       int       `json:"salonId"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	UnreadCount   int       `json:"unreadCount"`
}

// ConversationWithSalon — переписка вместе с данными салона.
type ConversationWithSalon struct {
	Conversation
	Salon TattooSalon `json:"salon"`
}
