// Package generate реализует HTTP-обработчик генерации эскиза тату.
//
// Ошибка внешнего сервиса генерации возвращается клиенту как 502.
package generate

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
	"github.com/magabrotheeeer/tattoo-studio/internal/imagegen"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/sl"
	"github.com/magabrotheeeer/tattoo-studio/internal/models"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage"
)

// Handler обрабатывает запросы на генерацию эскиза.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики генерации.
type Service interface {
	Generate(ctx context.Context, userID int, prompt, style string) (models.GalleryImage, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP генерирует эскиз и сохраняет его в галерею пользователя.
//
// @Summary      Сгенерировать эскиз
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Param        request  body      models.GenerateRequest  true  "Описание и стиль"
// @Success      201      {object}  models.GalleryImage
// @Failure      400      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Failure      502      {object}  response.ErrorResponse
// @Router       /generate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.gallery.generate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.GenerateRequest
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

	img, err := h.service.Generate(r.Context(), *req.UserID, req.Prompt, req.Style)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	case errors.Is(err, imagegen.ErrGeneration):
		log.Error("image provider failed", sl.Err(err))
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, response.Error("failed to generate image"))
		return
	case err != nil:
		log.Error("failed to generate image", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save image"))
		return
	}

	log.Info("success to generate image", slog.String("id", img.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, img)
}
