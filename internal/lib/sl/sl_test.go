package sl_test

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/tattoo-studio/internal/lib/sl"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	err := errors.New("salon not found")
	attr := sl.Err(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("salon not found"), attr.Value)
}

func TestErr_WrappedError(t *testing.T) {
	err := fmt.Errorf("storage.memory.GetSalon: %w", errors.New("not found"))
	attr := sl.Err(err)

	assert.Equal(t, "storage.memory.GetSalon: not found", attr.Value.String())
}

func TestErr_NilError(t *testing.T) {
	assert.NotPanics(t, func() {
		attr := sl.Err(nil)
		assert.Equal(t, "error", attr.Key)
		assert.Empty(t, attr.Value.String())
	})
}
