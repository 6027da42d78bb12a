// Package storage содержит общие для всех реализаций хранилища ошибки.
// Конкретные хранилища оборачивают их через fmt.Errorf("%s: %w", op, err),
// поэтому вызывающий код проверяет их через errors.Is.
package storage

import "errors"

var (
	// ErrNotFound возвращается, когда запрошенная запись отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken возвращается при попытке создать пользователя с занятым именем.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrConversationExists возвращается при попытке создать вторую переписку для той же пары.
	ErrConversationExists = errors.New("conversation already exists")
)
