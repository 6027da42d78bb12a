package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/magabrotheeeer/tattoo-studio/internal/models"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage"
)

// SaveGalleryImage сохраняет изображение. ID назначает вызывающий код.
func (s *Storage) SaveGalleryImage(ctx context.Context, img models.GalleryImage) error {
	const op = "storage.memory.SaveGalleryImage"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}
	if img.ID == "" {
		return fmt.Errorf("%s: empty image id", op)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.gallery[img.ID]; ok {
		return fmt.Errorf("%s: duplicate image id %s", op, img.ID)
	}
	if img.CreatedAt.IsZero() {
		img.CreatedAt = s.now()
	}
	s.gallery[img.ID] = img
	s.galleryOrder = append(s.galleryOrder, img.ID)
	return nil
}

// GetGalleryImage возвращает изображение по ID.
func (s *Storage) GetGalleryImage(ctx context.Context, id string) (models.GalleryImage, error) {
	const op = "storage.memory.GetGalleryImage"
	if err := checkCtx(ctx, op); err != nil {
		return models.GalleryImage{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.gallery[id]
	if !ok {
		return models.GalleryImage{}, fmt.Errorf("%s: image %s: %w", op, id, storage.ErrNotFound)
	}
	return img, nil
}

// ListGalleryImages возвращает изображения от новых к старым.
func (s *Storage) ListGalleryImages(ctx context.Context, filter models.GalleryFilter) ([]models.GalleryImage, error) {
	const op = "storage.memory.ListGalleryImages"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]models.GalleryImage, 0)
	for _, id := range slices.Backward(s.galleryOrder) {
		img := s.gallery[id]
		if filter.UserID != 0 && img.UserID != filter.UserID {
			continue
		}
		if filter.Style != "" && img.Style != filter.Style {
			continue
		}
		res = append(res, img)
	}
	slices.SortStableFunc(res, func(a, b models.GalleryImage) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return res, nil
}
