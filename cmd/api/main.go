package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"tesla-buddy/config"
	_ "tesla-buddy/docs" // Swagger docs
	"tesla-buddy/internal/httpserver"
	"tesla-buddy/internal/middleware"
	"tesla-buddy/internal/session/repository"
	sessionUC "tesla-buddy/internal/session/usecase"
	"tesla-buddy/pkg/log"
	"tesla-buddy/pkg/mdsource"
	"tesla-buddy/pkg/mdview"
)

// @title       Tesla Buddy API
// @description Markdown checklists with interactive checkboxes.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Tesla Buddy...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Sentry (optional)
	sentryEnabled := false
	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Environment.Name,
		}); err != nil {
			logger.Warnf(ctx, "Sentry not available: %v", err)
		} else {
			sentryEnabled = true
			defer sentry.Flush(2 * time.Second)
			logger.Info(ctx, "Sentry initialized")
		}
	}

	// 4. Markdown pipeline
	source := mdsource.NewClient(logger, nil)
	transformer := mdview.NewHTML()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
			SentryEnabled:   sentryEnabled,
		},
		Source:      source,
		Transformer: transformer,
		Checklist: sessionUC.Config{
			DefaultSource:    cfg.Checklist.DefaultSourceURL,
			Interactive:      cfg.Checklist.Interactive,
			FetchTimeout:     cfg.Checklist.FetchTimeout,
			AllowedLinkHosts: cfg.Checklist.AllowedLinkHosts,
		},
		Sessions: repository.Options{
			MaxSessions: cfg.Session.MaxSessions,
			TTL:         cfg.Session.TTL,
		},
		DefaultTheme: mdview.ParseTheme(cfg.Checklist.DefaultTheme, mdview.ThemeLight),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
