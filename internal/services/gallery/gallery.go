// Package gallery генерирует эскизы тату через внешний сервис и ведёт галерею.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/tattoo-studio/internal/imagegen"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/sl"
	"github.com/magabrotheeeer/tattoo-studio/internal/metrics"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

// Repository определяет методы хранилища, нужные сервису.
type Repository interface {
	GetUser(ctx context.Context, id int) (models.User, error)
	SaveGalleryImage(ctx context.Context, img models.GalleryImage) error
	ListGalleryImages(ctx context.Context, filter models.GalleryFilter) ([]models.GalleryImage, error)
}

// Generator возвращает URL изображения по текстовому описанию.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service реализует генерацию и просмотр галереи.
type Service struct {
	repo      Repository
	generator Generator
	metrics   *metrics.Metrics
	log       *slog.Logger
	now       func() time.Time
	newID     func() string
}

// NewService создаёт сервис галереи.
func NewService(repo Repository, generator Generator, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
		metrics:   m,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// BuildPrompt формирует описание для сервиса генерации.
func BuildPrompt(prompt, style string) string {
	return fmt.Sprintf("A tattoo design in %s style, %s, black ink only.", style, prompt)
}

// Generate создаёт эскиз для пользователя и сохраняет его в галерею.
// Любая ошибка генератора оборачивается в imagegen.ErrGeneration.
func (s *Service) Generate(ctx context.Context, userID int, prompt, style string) (models.GalleryImage, error) {
	const op = "services.gallery.Generate"

	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return models.GalleryImage{}, fmt.Errorf("%s: %w", op, err)
	}

	url, err := s.generator.Generate(ctx, BuildPrompt(prompt, style))
	s.metrics.ImageGenerated(err)
	if err != nil {
		s.log.Error("image generation failed", slog.String("op", op), sl.Err(err))
		if errors.Is(err, imagegen.ErrGeneration) {
			return models.GalleryImage{}, fmt.Errorf("%s: %w", op, err)
		}
		return models.GalleryImage{}, fmt.Errorf("%s: %w: %w", op, imagegen.ErrGeneration, err)
	}

	img := models.GalleryImage{
		ID:        s.newID(),
		UserID:    userID,
		Prompt:    prompt,
		Style:     style,
		URL:       url,
		CreatedAt: s.now(),
	}
	if err := s.repo.SaveGalleryImage(ctx, img); err != nil {
		return models.GalleryImage{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("gallery image saved", slog.String("id", img.ID), slog.Int("user_id", userID))
	return img, nil
}

// List возвращает изображения галереи от новых к старым.
func (s *Service) List(ctx context.Context, filter models.GalleryFilter) ([]models.GalleryImage, error) {
	const op = "services.gallery.List"

	imgs, err := s.repo.ListGalleryImages(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return imgs, nil
}
