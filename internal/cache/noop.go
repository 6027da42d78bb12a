package cache

import (
	"context"
	"time"
)

// Noop — кэш, который ничего не хранит. Используется, когда redis не настроен.
type Noop struct{}

// Get всегда сообщает о промахе.
func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }

// Set ничего не делает.
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }

// Invalidate ничего не делает.
func (Noop) Invalidate(context.Context, string) error { return nil }

// Close ничего не делает.
func (Noop) Close() error { return nil }
