// Package conversations реализует HTTP-обработчик списка переписок пользователя.
package conversations

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

// Handler обрабатывает запросы на получение переписок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения переписок.
type Service interface {
	Conversations(ctx context.Context, userID int) ([]models.ConversationWithSalon, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает переписки пользователя, каждая вместе с салоном.
//
// @Summary      Переписки пользователя
// @Tags         chat
// @Produce      json
// @Param        userId  path      int  true  "ID пользователя"
// @Success      200     {array}   models.ConversationWithSalon
// @Failure      400     {object}  response.ErrorResponse
// @Failure      500     {object}  response.ErrorResponse
// @Router       /conversations/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.conversations"

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

	res, err := h.service.Conversations(r.Context(), userID)
	if err != nil {
		log.Error("failed to list conversations", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list conversations"))
		return
	}

	render.JSON(w, r, res)
}
