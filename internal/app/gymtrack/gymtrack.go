// Package gymtrack собирает приложение: хранилище, сервис участников,
// маршруты и HTTP-сервер с корректным завершением.
package gymtrack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/gymtrack/gymtrack/internal/config"
	"github.com/gymtrack/gymtrack/internal/events"
	"github.com/gymtrack/gymtrack/internal/migrations"
	memberservice "github.com/gymtrack/gymtrack/internal/services/member"
	"github.com/gymtrack/gymtrack/internal/storage/memstore"
	"github.com/gymtrack/gymtrack/internal/storage/redisstore"
	"github.com/gymtrack/gymtrack/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и ресурсы, требующие закрытия.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	cleanup func()
}

// New выбирает хранилище снимков по конфигу, поднимает сервис участников
// и собирает HTTP-сервер.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		cleanup()
		return nil, err
	}

	service, err := memberservice.NewService(ctx, store, publisher, logger)
	if err != nil {
		cleanup()
		return nil, err
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, service)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		cleanup: cleanup,
	}, nil
}

// newStore создает хранилище снимков коллекции участников.
// Неизвестный тип хранилища считается ошибкой конфигурации,
// пустой тип означает хранение в памяти.
func newStore(ctx context.Context, cfg *config.Config) (memberservice.SnapshotStore, func(), error) {
	switch cfg.StorageType {
	case "postgres":
		db, err := repository.New(cfg.StorageConnectionString)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
			_ = db.DB.Close()
			return nil, nil, err
		}
		if err := repository.CheckDatabaseReady(db); err != nil {
			_ = db.DB.Close()
			return nil, nil, err
		}
		return db, func() { _ = db.DB.Close() }, nil
	case "redis":
		store, err := redisstore.InitServer(ctx, cfg.RedisConnection, cfg.MembersKey)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Db.Close() }, nil
	case "memory", "":
		return memstore.New(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}
}

// newPublisher подключает публикацию событий, если настроен RabbitMQ.
func newPublisher(cfg *config.Config, logger *slog.Logger) (events.Publisher, error) {
	if cfg.RabbitURL == "" {
		return events.NoopPublisher{}, nil
	}
	conn, err := events.Connect(cfg.RabbitURL, 5, 2*time.Second)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to rabbitmq", slog.String("exchange", cfg.Exchange))
	return events.NewRabbitPublisher(conn, cfg.Events)
}

// Run запускает сервер и блокируется до ошибки или отмены контекста.
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
		a.cleanup()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.cleanup()
		return err
	}
}
