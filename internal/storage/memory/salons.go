package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/magabrotheeeer/tattoo-studio/internal/models"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage"
)

func cloneSalon(salon models.TattooSalon) models.TattooSalon {
	salon.Styles = cloneStrings(salon.Styles)
	return salon
}

// CreateSalon добавляет салон и возвращает его с присвоенным ID.
func (s *Storage) CreateSalon(ctx context.Context, salon models.TattooSalon) (models.TattooSalon, error) {
	const op = "storage.memory.CreateSalon"
	if err := checkCtx(ctx, op); err != nil {
		return models.TattooSalon{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	salon = cloneSalon(salon)
	salon.ID = s.salonSeq.next()
	s.salons[salon.ID] = salon
	return cloneSalon(salon), nil
}

// GetSalon возвращает салон по ID.
func (s *Storage) GetSalon(ctx context.Context, id int) (models.TattooSalon, error) {
	const op = "storage.memory.GetSalon"
	if err := checkCtx(ctx, op); err != nil {
		return models.TattooSalon{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	salon, ok := s.salons[id]
	if !ok {
		return models.TattooSalon{}, fmt.Errorf("%s: salon %d: %w", op, id, storage.ErrNotFound)
	}
	return cloneSalon(salon), nil
}

// ListSalons возвращает салоны, подходящие под все заданные критерии, в порядке создания.
func (s *Storage) ListSalons(ctx context.Context, filter models.SalonFilter) ([]models.TattooSalon, error) {
	const op = "storage.memory.ListSalons"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(filter.Search)
	res := make([]models.TattooSalon, 0, len(s.salons))
	for _, salon := range s.salons {
		if matchSalon(salon, filter, query) {
			res = append(res, cloneSalon(salon))
		}
	}
	slices.SortFunc(res, func(a, b models.TattooSalon) int { return cmp.Compare(a.ID, b.ID) })
	return res, nil
}

// matchSalon проверяет салон по фильтру. query содержит f.Search в нижнем регистре.
func matchSalon(salon models.TattooSalon, f models.SalonFilter, query string) bool {
	if f.City != "" && f.City != models.AllCities && salon.City != f.City {
		return false
	}
	if f.Style != "" && f.Style != models.AllStyles && !slices.Contains(salon.Styles, f.Style) {
		return false
	}
	if query != "" {
		if strings.Contains(strings.ToLower(salon.Name), query) ||
			strings.Contains(strings.ToLower(salon.Description), query) {
			return true
		}
		return slices.ContainsFunc(salon.Styles, func(style string) bool {
			return strings.Contains(strings.ToLower(style), query)
		})
	}
	return true
}
