package models

import "time"

// UserSubscription связывает пользователя с тарифным планом на период.
type UserSubscription struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	PlanID    int       `json:"planId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
}

// SubscriptionWithPlan — подписка вместе с её планом.
type SubscriptionWithPlan struct {
	UserSubscription
	Plan SubscriptionPlan `json:"plan"`
}

// SubscribeRequest — тело запроса на оформление подписки.
// Указатели позволяют отличить отсутствующее поле от нулевого значения.
type SubscribeRequest struct {
	UserID *int `json:"userId" validate:"required"`
	PlanID *int `json:"planId" validate:"required"`
}

// SubscribeResult — ответ на успешное оформление подписки.
type SubscribeResult struct {
	Subscription UserSubscription `json:"subscription"`
	Plan         SubscriptionPlan `json:"plan"`
}
