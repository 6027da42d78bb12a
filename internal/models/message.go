package models

import "time"

// Message — сообщение в переписке пользователя с салоном. Неизменяемо.
type Message struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	SalonID    int       `json:"salonId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	IsFromUser bool      `json:"isFromUser"`
}

// SendMessageRequest — тело запроса на отправку сообщения.
type SendMessageRequest struct {
	UserID     *int   `json:"userId" validate:"required"`
	SalonID    *int   `json:"salonId" validate:"required"`
	Content    string `json:"content" validate:"required"`
	IsFromUser *bool  `json:"isFromUser" validate:"required"`
}
