package register

import (
	"context"

	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

type Service interface {
	Register(ctx context.Context, username, password string) (models.User, error)
}
