// Package tattoostudio собирает HTTP-приложение тату-студии: хранилище, кэш,
// публикацию событий, генератор изображений, сервисы и маршруты.
package tattoostudio

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/tattoo-studio/internal/cache"
	"github.com/magabrotheeeer/tattoo-studio/internal/config"
	"github.com/magabrotheeeer/tattoo-studio/internal/events"
	"github.com/magabrotheeeer/tattoo-studio/internal/imagegen"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/password"
	"github.com/magabrotheeeer/tattoo-studio/internal/lib/sl"
	"github.com/magabrotheeeer/tattoo-studio/internal/metrics"
	communityservice "github.com/magabrotheeeer/tattoo-studio/internal/services/community"
	galleryservice "github.com/magabrotheeeer/tattoo-studio/internal/services/gallery"
	subservice "github.com/magabrotheeeer/tattoo-studio/internal/services/subscription"
	userservice "github.com/magabrotheeeer/tattoo-studio/internal/services/user"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage/memory"
)

// seedUserPassword — пароль демонстрационного пользователя testuser.
const seedUserPassword = "password"

// Cache объединяет методы кэша, нужные сервисам, и закрытие соединения.
type Cache interface {
	subservice.Cache
	io.Closer
}

// Publisher объединяет публикацию событий и закрытие соединения.
type Publisher interface {
	subservice.Publisher
	io.Closer
}

type App struct {
	server    *http.Server
	logger    *slog.Logger
	store     *memory.Storage
	cache     Cache
	publisher Publisher
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store := memory.New()
	if !cfg.SkipSeed {
		hashed, err := password.Hash(seedUserPassword)
		if err != nil {
			return nil, err
		}
		if err := store.Seed(ctx, hashed); err != nil {
			return nil, err
		}
		logger.Info("storage seeded with demo data")
	}

	var appCache Cache = cache.Noop{}
	if cfg.Redis.Address != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		appCache = cacheRedis
		logger.Info("redis cache enabled", slog.String("address", cfg.Redis.Address))
	}

	var publisher Publisher = events.Noop{}
	if cfg.RabbitMQ.URL != "" {
		conn, err := events.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			_ = appCache.Close()
			return nil, err
		}
		rabbit, err := events.NewRabbitPublisher(conn, cfg.RabbitMQ.Exchange)
		if err != nil {
			_ = conn.Close()
			_ = appCache.Close()
			return nil, err
		}
		publisher = rabbit
		logger.Info("event publishing enabled", slog.String("exchange", cfg.RabbitMQ.Exchange))
	}

	var generator galleryservice.Generator = imagegen.Stub{}
	if cfg.ImageProvider.URL != "" {
		generator = imagegen.NewClient(
			cfg.ImageProvider.URL,
			cfg.ImageProvider.APIKey,
			cfg.ImageProvider.Model,
			cfg.ImageProvider.Size,
			cfg.ImageProvider.Timeout,
		)
	} else {
		logger.Warn("image provider is not configured, using stub generator")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	services := Services{
		Subscription: subservice.NewService(store, appCache, publisher, m, logger, cfg.Redis.TTL),
		Community:    communityservice.NewService(store, appCache, publisher, m, logger, cfg.Redis.TTL),
		User:         userservice.NewService(store, logger),
		Gallery:      galleryservice.NewService(store, generator, m, logger),
	}

	router := chi.NewRouter()
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	RegisterRoutes(router, logger, services, m, registry, limiter)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server:    srv,
		logger:    logger,
		store:     store,
		cache:     appCache,
		publisher: publisher,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if err := a.publisher.Close(); err != nil {
		a.logger.Error("failed to close event publisher", sl.Err(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close cache", sl.Err(err))
	}
}
