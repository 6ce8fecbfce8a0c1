package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/wellwisher/wellwisher-backend/internal/config"
	"github.com/wellwisher/wellwisher-backend/internal/migrations"
	"github.com/wellwisher/wellwisher-backend/internal/modules/auth"
	"github.com/wellwisher/wellwisher-backend/internal/modules/health"
	"github.com/wellwisher/wellwisher-backend/internal/modules/user"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// A .env file is a development convenience; in deployment the
	// variables come from the process environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Error("connecting to database", "error", err)
		os.Exit(1)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		log.Error("applying migrations", "error", err)
		os.Exit(1)
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	userRepo := user.NewPostgresRepository(db)
	authService := auth.NewService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL, cfg.BcryptCost)
	auth.NewHandler(authService, log).RegisterRoutes(router)

	health.NewHandler(time.Now()).RegisterRoutes(router)

	addr := ":" + cfg.Port
	log.Info("server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
