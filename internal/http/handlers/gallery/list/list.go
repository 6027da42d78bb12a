// Package list реализует HTTP-обработчик просмотра галереи.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tattoo-studio/internal/http/response"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/sl"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

// Handler обрабатывает запросы на просмотр галереи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики галереи.
type Service interface {
	List(ctx context.Context, filter models.GalleryFilter) ([]models.GalleryImage, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает изображения галереи от новых к старым.
//
// @Summary      Галерея эскизов
// @Tags         gallery
// @Produce      json
// @Param        userId  query     int     false  "ID пользователя"
// @Param        style   query     string  false  "Стиль"
// @Success      200     {array}   models.GalleryImage
// @Failure      400     {object}  response.ErrorResponse
// @Failure      500     {object}  response.ErrorResponse
// @Router       /gallery [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.gallery.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	filter := models.GalleryFilter{Style: q.Get("style")}
	if raw := q.Get("userId"); raw != "" {
		userID, err := strconv.Atoi(raw)
		if err != nil {
			log.Error("failed to decode user id from query", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id"))
			return
		}
		filter.UserID = userID
	}

	res, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list gallery", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list gallery"))
		return
	}

	render.JSON(w, r, res)
}
