package main

//go:generate swag init

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dmarsland/bankist/bank"
	"github.com/dmarsland/bankist/clock"
	"github.com/dmarsland/bankist/config"
	_ "github.com/dmarsland/bankist/docs"
	"github.com/dmarsland/bankist/handlers"
	"github.com/dmarsland/bankist/session"
)

// @title           Bankist API
// @version         1.0.0
// @description     Demo bank: PIN login, transfers, loans, account closure, and an inactivity logout countdown. All state is in memory and resets on restart.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization

func main() {
	var (
		addr    = pflag.String("addr", "", "listen address (overrides ADDR)")
		seed    = pflag.String("seed", "", "seed accounts JSON file (overrides SEED_PATH)")
		envFile = pflag.String("env-file", "", "env file to load before reading config")
	)
	pflag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			slog.Error("failed to load env file", "path", *envFile, "error", err)
			os.Exit(1)
		}
	} else {
		// A missing default .env is fine.
		_ = godotenv.Load()
	}

	cfg := config.New()
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *seed != "" {
		cfg.SeedPath = *seed
	}

	// Configure structured logging
	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Load the accounts
	var seedData []byte
	if cfg.SeedPath != "" {
		data, err := os.ReadFile(cfg.SeedPath)
		if err != nil {
			slog.Error("failed to read seed file", "path", cfg.SeedPath, "error", err)
			os.Exit(1)
		}
		seedData = data
	}
	b, err := bank.FromSeed(seedData)
	if err != nil {
		slog.Error("failed to load accounts", "error", err)
		os.Exit(1)
	}
	slog.Info("accounts loaded", "count", b.Size())

	// Set shared session manager for handlers
	handlers.Sessions = session.NewManager(b, clock.Real(), cfg.IdleTimeout, cfg.LoanDelay)

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Mount("/api/v1", handlers.Routes())

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	slog.Info("server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
