// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Brightsite server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brightsite/internal/cache"
	"brightsite/internal/config"
	"brightsite/internal/database"
	"brightsite/internal/engine"
	"brightsite/internal/forms"
	"brightsite/internal/handlers"
	"brightsite/internal/mailer"
	"brightsite/internal/render"
	"brightsite/internal/router"
	"brightsite/internal/selection"
	"brightsite/internal/session"
	"brightsite/internal/storage"
	"brightsite/internal/store"
	"brightsite/internal/stylevars"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	sessionStore := session.NewStore(valkeyClient)

	// Initialize the HTML template renderer for admin pages.
	// In dev mode, templates load assets from CDN; in production they use
	// compiled local files embedded in the binary.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	pageStore := store.NewPageContentStore(db)
	sectionStore := store.NewSectionStore(db)
	navStore := store.NewNavStore(db)
	testimonialStore := store.NewTestimonialStore(db)
	submissionStore := store.NewSubmissionStore(db)
	settingStore := store.NewSiteSettingStore(db)
	mediaStore := store.NewMediaStore(db)

	// Connect to S3-compatible object storage (optional, the app works
	// without it; media uploads are disabled when unconfigured).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"bucket", cfg.S3Bucket,
		)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}

	// Style variable namespace plus the selection store that drives it.
	// Load reconciles cached selections with the database copy so a
	// fresh Valkey starts from the persisted appearance. Tier failures
	// degrade to defaults inside Load; they never abort startup.
	vars := stylevars.New()
	sel := selection.New(valkeyClient, settingStore, vars, logger)
	sel.Load(context.Background())

	// Page composition engine and the full-page HTML cache in Valkey.
	eng := engine.New(pageStore, sectionStore, testimonialStore, navStore, settingStore, sel, vars, logger)
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Visitor form intake with SMTP notifications.
	formService := forms.New(submissionStore, mailer.New(settingStore), logger)

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(renderer, pageStore, sectionStore, navStore, testimonialStore, submissionStore, settingStore, mediaStore, storageClient, sel, eng, pageCache)
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)
	publicHandlers := handlers.NewPublic(eng, formService, vars, pageCache)

	// Set up the Chi router with all middleware and routes.
	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	r := router.New(sessionStore, adminHandlers, authHandlers, publicHandlers, secureCookies)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
