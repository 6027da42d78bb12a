// Package events публикует доменные события (новое сообщение, новая подписка)
// во внешнюю шину. Без настроенной шины используется Noop.
package events

import (
	"context"
	"time"
)

const (
	// RoutingMessageCreated — ключ маршрутизации события о новом сообщении.
	RoutingMessageCreated = "message.created"
	// RoutingSubscriptionCreated — ключ маршрутизации события о новой подписке.
	RoutingSubscriptionCreated = "subscription.created"
)

// MessageCreated отправляется после сохранения сообщения.
type MessageCreated struct {
	MessageID  int       `json:"messageId"`
	UserID     int       `json:"userId"`
	SalonID    int       `json:"salonId"`
	IsFromUser bool      `json:"isFromUser"`
	Timestamp  time.Time `json:"timestamp"`
}

// SubscriptionCreated отправляется после оформления подписки.
type SubscriptionCreated struct {
	SubscriptionID int       `json:"subscriptionId"`
	UserID         int       `json:"userId"`
	PlanID         int       `json:"planId"`
	EndDate        time.Time `json:"endDate"`
}

// Noop отбрасывает события.
type Noop struct{}

// Publish ничего не делает.
func (Noop) Publish(context.Context, string, any) error { return nil }

// Close ничего не делает.
func (Noop) Close() error { return nil }
