// Package models содержит доменные сущности приложения тату-студии и DTO для
// приёма JSON-запросов. Сущности хранятся в памяти процесса (internal/storage/memory)
// и сериализуются в JSON с именами полей в camelCase.
package models

// User представляет пользователя приложения.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt-хэш для зарегистрированных пользователей
}

// RegisterRequest используется для приёма данных регистрации.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}
