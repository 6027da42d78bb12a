// Package send реализует HTTP-обработчик отправки сообщения в переписку.
package send

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tattoo-studio/internal/http/response"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/sl"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage"
)

// Handler обрабатывает запросы на отправку сообщения.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики отправки сообщения.
type Service interface {
	SendMessage(ctx context.Context, userID, salonID int, content string, isFromUser bool) (models.Message, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP сохраняет сообщение и возвращает его с присвоенными ID и временем.
//
// @Summary      Отправить сообщение
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request  body      models.SendMessageRequest  true  "Сообщение"
// @Success      201      {object}  models.Message
// @Failure      400      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /messages [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.send"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	msg, err := h.service.SendMessage(r.Context(), *req.UserID, *req.SalonID, req.Content, *req.IsFromUser)
	if errors.Is(err, storage.ErrNotFound) {
		log.Info("user or salon not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("user or salon not found"))
		return
	}
	if err != nil {
		log.Error("failed to send message", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not send message"))
		return
	}

	log.Info("success to send message", slog.Int("id", msg.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, msg)
}
