package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/hmartins/secconsole/internal/config"
	"github.com/hmartins/secconsole/internal/database"
	"github.com/hmartins/secconsole/internal/report"
	"github.com/hmartins/secconsole/internal/server"
	"github.com/hmartins/secconsole/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// A local .env is optional; config.Load reads the same variables.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	st := store.New()
	gen := report.NewGenerator(cfg.Reports.FontPath)

	srv := server.New(cfg, st, db, gen)
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
