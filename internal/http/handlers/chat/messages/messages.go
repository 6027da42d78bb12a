// Package messages реализует HTTP-обработчик истории переписки.
//
// Чтение истории сбрасывает счётчик непрочитанных сообщений переписки.
package messages

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/tattoo-studio/internal/http/response"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/sl"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
)

// Handler обрабатывает запросы на получение истории переписки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения сообщений.
type Service interface {
	Messages(ctx context.Context, userID, salonID int) ([]models.Message, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает сообщения пары (пользователь, салон) по возрастанию времени.
//
// @Summary      История переписки
// @Tags         chat
// @Produce      json
// @Param        userId   path      int  true  "ID пользователя"
// @Param        salonId  path      int  true  "ID салона"
// @Success      200      {array}   models.Message
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /messages/{userId}/{salonId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.messages"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		log.Error("failed to decode user id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user id"))
		return
	}
	salonID, err := strconv.Atoi(chi.URLParam(r, "salonId"))
	if err != nil {
		log.Error("failed to decode salon id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid salon id"))
		return
	}

	res, err := h.service.Messages(r.Context(), userID, salonID)
	if err != nil {
		log.Error("failed to list messages", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list messages"))
		return
	}

	render.JSON(w, r, res)
}
