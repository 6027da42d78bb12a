// Package read реализует HTTP-обработчик получения салона по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tattoo-studio/internal/http/response"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/sl"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage"
)

// Handler обрабатывает запросы на получение салона.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения салона.
type Service interface {
	Salon(ctx context.Context, id int) (models.TattooSalon, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает салон по ID.
//
// @Summary      Салон по ID
// @Tags         salons
// @Produce      json
// @Param        id   path      int  true  "ID салона"
// @Success      200  {object}  models.TattooSalon
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /salons/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.salon.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid salon id"))
		return
	}

	res, err := h.service.Salon(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		log.Info("salon not found", slog.Int("id", id))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("salon not found"))
		return
	}
	if err != nil {
		log.Error("failed to read salon", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read salon"))
		return
	}

	render.JSON(w, r, res)
}
