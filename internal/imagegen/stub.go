package imagegen

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
)

// StubBaseURL — адрес, из которого заглушка строит URL изображений.
const StubBaseURL = "https://placehold.co/256x256/png?text="

// Stub возвращает детерминированный URL-заглушку вместо обращения к сервису.
type Stub struct{}

// Generate возвращает URL, зависящий только от prompt.
func (Stub) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sum := sha1.Sum([]byte(prompt))
	return StubBaseURL + hex.EncodeToString(sum[:8]), nil
}
