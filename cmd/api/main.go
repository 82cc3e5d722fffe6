// Package main is the entrypoint for the user API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/ece-devops/userapi/internal/apidocs"
	"github.com/ece-devops/userapi/internal/config"
	"github.com/ece-devops/userapi/internal/handler"
	"github.com/ece-devops/userapi/internal/metrics"
	"github.com/ece-devops/userapi/internal/server"
	"github.com/ece-devops/userapi/internal/service"
	"github.com/ece-devops/userapi/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	// Initialize record store
	st, err := store.New(cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to configure Redis client",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}

	listenerCtx, stopListener := context.WithCancel(ctx)
	go logStoreErrors(listenerCtx, logger, st, cfg.RedisURL)

	// An unreachable store is not fatal; requests fail until it comes back.
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := st.Ping(pingCtx); err != nil {
		logger.Warn("Redis not reachable at startup",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
	} else {
		logger.Info("connected to Redis", slog.String("redis_url", redactURL(cfg.RedisURL)))
	}
	cancel()

	// Initialize services
	metricsRecorder := metrics.NewInMemory()
	userService := service.NewUserService(st, metricsRecorder)

	// Initialize handlers
	doc, err := apidocs.Load(ctx)
	if err != nil {
		logger.Error("failed to load API documentation", "error", err)
		os.Exit(1)
	}
	docsHandler, err := handler.NewDocsHandler(doc, "/api-docs/openapi.json")
	if err != nil {
		logger.Error("failed to build API documentation", "error", err)
		os.Exit(1)
	}

	r := server.NewRouter(server.RouterConfig{
		Handler:            handler.New(),
		Health:             handler.NewHealthHandler(st),
		Users:              handler.NewUserHandler(userService, logger),
		Docs:               docsHandler,
		Metrics:            handler.NewMetricsHandler(metricsRecorder),
		Logger:             logger,
		IsDevelopment:      cfg.IsDevelopment(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
	})

	srv := server.New(r, server.Options{
		Port:            cfg.Port,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	srv.OnShutdown("redis", func(context.Context) error {
		return st.Close()
	})
	srv.OnShutdown("redis-error-listener", func(context.Context) error {
		stopListener()
		return nil
	})

	logger.Info("starting server",
		"port", cfg.Port,
		"env", cfg.AppEnv,
		"docs", "/api-docs",
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// logStoreErrors logs connection errors reported by the store until ctx ends.
func logStoreErrors(ctx context.Context, logger *slog.Logger, st *store.Store, redisURL string) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-st.Errors():
			logger.Error("redis connection error",
				slog.String("error", sanitizeError(err, redisURL)),
			)
		}
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

// redactURL strips the password from a connection URL.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

// sanitizeError removes connection secrets from an error message.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
