// Package list реализует HTTP-обработчик поиска салонов.
//
// Параметры запроса city, style и search необязательны. Значения «Всі міста»
// и «Всі стилі» не фильтруют.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tattoo-studio/internal/http/response"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/sl"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

// Handler обрабатывает запросы на поиск салонов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики поиска салонов.
type Service interface {
	Salons(ctx context.Context, filter models.SalonFilter) ([]models.TattooSalon, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает салоны, подходящие под фильтр.
//
// @Summary      Поиск салонов
// @Tags         salons
// @Produce      json
// @Param        city    query     string  false  "Город"
// @Param        style   query     string  false  "Стиль"
// @Param        search  query     string  false  "Подстрока в названии, описании или стилях"
// @Success      200     {array}   models.TattooSalon
// @Failure      500     {object}  response.ErrorResponse
// @Router       /salons [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.salon.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	filter := models.SalonFilter{
		City:   q.Get("city"),
		Style:  q.Get("style"),
		Search: q.Get("search"),
	}

	res, err := h.service.Salons(r.Context(), filter)
	if err != nil {
		log.Error("failed to list salons", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list salons"))
		return
	}

	log.Debug("success to list salons", slog.Any("filter", filter), slog.Int("count", len(res)))
	render.JSON(w, r, res)
}
