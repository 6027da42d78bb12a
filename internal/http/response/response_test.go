package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	got := Error("salon not found")
	assert.Equal(t, ErrorResponse{Status: "Error", Error: "salon not found"}, got)
}

func TestValidationError(t *testing.T) {
	type request struct {
		UserID   *int   `validate:"required"`
		Username string `validate:"required,min=3"`
		Style    string `validate:"max=4"`
	}

	err := validator.New().Struct(request{Username: "ab", Style: "Японський"})
	require.Error(t, err)

	got := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t,
		"field UserID is a required field, field Username must be at least 3 characters, field Style must be at most 4 characters",
		got.Error)
}
