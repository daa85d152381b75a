package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/iliyamo/hbnb-api/internal/config"
	"github.com/iliyamo/hbnb-api/internal/database"
	"github.com/iliyamo/hbnb-api/internal/handler"
	"github.com/iliyamo/hbnb-api/internal/model"
	"github.com/iliyamo/hbnb-api/internal/queue"
	"github.com/iliyamo/hbnb-api/internal/repository"
	"github.com/iliyamo/hbnb-api/internal/router"
	"github.com/iliyamo/hbnb-api/internal/service"
	"github.com/iliyamo/hbnb-api/internal/utils"
)

func main() {
	log.SetOutput(os.Stdout)

	app := fx.New(
		fx.WithLogger(func(l *slog.Logger) fxevent.Logger { return &fxevent.SlogLogger{Logger: l} }),

		// Providers
		fx.Provide(
			config.Load,
			config.LoadCacheConfig,
			config.LoadRateLimitConfig,
			config.NewRedisClient,
			newLogger,
			newStore,
			newPublisher,
			newHasher,
			service.New,
			handler.NewHandler,
			newEcho,
		),

		// Invocations
		fx.Invoke(
			router.RegisterRoutes,
			router.RegisterAPI,
			registerStoreHooks,
			registerRedisHooks,
			registerAuditConsumer,
			registerServerHooks,
		),
	)
	app.Run() // blocks until SIGINT/SIGTERM, then runs OnStop hooks
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// newStore selects the storage backend once.  Nothing downstream knows which
// one it received.
func newStore(cfg config.Config, logger *slog.Logger) (repository.Store, error) {
	if !cfg.UseDBStorage {
		logger.Info("using file storage", "path", cfg.StoragePath)
		return repository.NewFileStore(cfg.StoragePath, logger)
	}
	db, err := database.OpenGorm(cfg)
	if err != nil {
		return nil, err
	}
	store := repository.NewGormStore(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	logger.Info("using database storage", "dialect", cfg.DBDialect, "host", cfg.DBHost, "db", cfg.DBName)
	return store, nil
}

func newPublisher(cfg config.Config, logger *slog.Logger) queue.Publisher {
	if !cfg.EventsEnabled {
		return queue.NopPublisher{}
	}
	return queue.NewAMQPPublisher(cfg.RabbitURL, logger)
}

func newHasher(cfg config.Config) model.PasswordHasher {
	return utils.Hasher(cfg.BcryptCost)
}

func newEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	router.Use(e, logger)
	return e
}

func registerStoreHooks(lc fx.Lifecycle, store repository.Store, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := store.Close(); err != nil {
				logger.Error("closing store", "error", err)
				return err
			}
			return nil
		},
	})
}

// registerRedisHooks closes the client; rdb is nil when both the cache and
// the rate limiter are disabled or Redis was unreachable.
func registerRedisHooks(lc fx.Lifecycle, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig, logger *slog.Logger) {
	if rdb == nil {
		if cacheCfg.Enabled || rlCfg.Enabled {
			logger.Warn("redis unavailable; response cache and rate limit disabled")
		}
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error { return rdb.Close() },
	})
}

func registerAuditConsumer(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	if !cfg.AuditConsumerEnabled {
		return
	}
	consumer := queue.NewAuditConsumer(cfg.RabbitURL, cfg.AuditLogPath, logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("audit consumer stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}

// registerServerHooks registers lifecycle hooks for the HTTP server
func registerServerHooks(lc fx.Lifecycle, e *echo.Echo, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			addr := ":" + cfg.Port
			logger.Info("listening", "addr", addr, "env", cfg.Env)
			// Start server in a separate goroutine
			go func() {
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("server failed: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			logger.Info("shutting down server")
			return e.Shutdown(shutdownCtx)
		},
	})
}
