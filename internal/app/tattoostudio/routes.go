package tattoostudio

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/chat/conversations"
	"github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/chat/messages"
	"github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/chat/send"
	"github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/gallery/generate"
	gallerylist "github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/gallery/list"
	"github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/health"
	salonlist "github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/salon/list"
	salonread "github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/salon/read"
	"github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/subscription/cancel"
	sublist "github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/subscription/list"
	"github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/subscription/plans"
	"github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/subscription/subscribe"
	userread "github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/user/read"
	"github.com/magabrotheeeer/tattoo-studio/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/tattoo-studio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/tattoo-studio/internal/metrics"
	communityservice "github.com/magabrotheeeer/tattoo-studio/internal/services/community"
	galleryservice "github.com/magabrotheeeer/tattoo-studio/internal/services/gallery"
	subservice "github.com/magabrotheeeer/tattoo-studio/internal/services/subscription"
	userservice "github.com/magabrotheeeer/tattoo-studio/internal/services/user"
)

// Services — сервисы бизнес-логики, на которые ссылаются обработчики.
type Services struct {
	Subscription *subservice.Service
	Community    *communityservice.Service
	User         *userservice.Service
	Gallery      *galleryservice.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s Services, m *metrics.Metrics, gatherer prometheus.Gatherer, limiter *rate.Limiter) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.MetricsMiddleware(m),
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.New(logger).ServeHTTP)

		r.Get("/subscription-plans", plans.New(logger, s.Subscription).ServeHTTP)
		r.Get("/user-subscriptions/{userId}", sublist.New(logger, s.Subscription).ServeHTTP)

		r.Get("/salons", salonlist.New(logger, s.Community).ServeHTTP)
		r.Get("/salons/{id}", salonread.New(logger, s.Community).ServeHTTP)
		r.Get("/conversations/{userId}", conversations.New(logger, s.Community).ServeHTTP)
		r.Get("/messages/{userId}/{salonId}", messages.New(logger, s.Community).ServeHTTP)

		r.Get("/users/{id}", userread.New(logger, s.User).ServeHTTP)
		r.Get("/gallery", gallerylist.New(logger, s.Gallery).ServeHTTP)

		// Запись ограничена по частоте
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
			r.Post("/subscribe", subscribe.New(logger, s.Subscription).ServeHTTP)
			r.Post("/user-subscriptions/{id}/cancel", cancel.New(logger, s.Subscription).ServeHTTP)
			r.Post("/messages", send.New(logger, s.Community).ServeHTTP)
			r.Post("/register", register.New(logger, s.User).ServeHTTP)
			r.Post("/generate", generate.New(logger, s.Gallery).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
