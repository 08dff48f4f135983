package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"folio-go/internal/cache"
	"folio-go/internal/config"
	"folio-go/internal/handler"
	"folio-go/internal/handler/api"
	"folio-go/internal/logging"
	"folio-go/internal/middleware"
	"folio-go/internal/scheduler"
	"folio-go/internal/session"
	"folio-go/internal/store"
	"folio-go/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	showHelp := flag.Bool("help", false, "print usage and exit")
	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		_, _ = fmt.Printf("folio %s (commit: %s, built: %s)\n",
			version.Version, version.GitCommit, version.BuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional, for development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(textHandler))

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}(db)

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade the logger so WARN and ERROR records land in the event log.
	slog.SetDefault(slog.New(logging.NewEventLogHandler(textHandler, db)))

	ctx := context.Background()
	if err := store.Seed(ctx, db, store.AdminCredentials{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	}); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	sessionManager := session.New(cfg.IsDevelopment())
	slog.Info("session manager initialized")

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	responseCache := cache.New(cfg.RedisURL, cfg.CachePrefix, cacheTTL)
	defer func() {
		if err := responseCache.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()

	sched := scheduler.New(db, slog.Default(), time.Duration(cfg.EventRetentionDays)*24*time.Hour)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	loginProtection := middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		MaxFailedAttempts: cfg.LoginMaxAttempts,
		LockoutDuration:   time.Duration(cfg.LoginLockoutMinutes) * time.Minute,
	})
	slog.Info("login protection initialized",
		"max_failed_attempts", cfg.LoginMaxAttempts,
		"lockout_duration", time.Duration(cfg.LoginLockoutMinutes)*time.Minute,
	)

	apiHandler := api.NewHandler(db, responseCache, sessionManager, loginProtection, cacheTTL)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.CSRF([]byte(cfg.SessionSecret), cfg.IsDevelopment()))

	r.Route("/api", func(r chi.Router) {
		apiHandler.Routes(r,
			middleware.RequireAdmin(sessionManager, db),
			loginProtection.Middleware(),
		)
	})
	r.Get("/admin", handler.AdminPage)

	// Crawlers get the sitemap only on the real deployment.
	seoHandler := handler.NewSEO(db, cfg.SiteURL, cfg.IsDevelopment())
	r.Get("/robots.txt", seoHandler.Robots)
	r.Get("/sitemap.xml", seoHandler.Sitemap)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
