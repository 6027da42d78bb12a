package models

import "time"

// GalleryImage — сгенерированный эскиз тату в галерее пользователя.
type GalleryImage struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	Prompt    string    `json:"prompt"`
	Style     string    `json:"style"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// GalleryFilter задаёт выборку галереи. Нулевые поля не фильтруют.
type GalleryFilter struct {
	UserID int
	Style  string
}

// GenerateRequest — запрос на генерацию эскиза.
type GenerateRequest struct {
	UserID *int   `json:"userId" validate:"required"`
	Prompt string `json:"prompt" validate:"required,max=1000"`
	Style  string `json:"style" validate:"required,max=64"`
}
