package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"herbadmin/infrastructure/backend"
	"herbadmin/infrastructure/cache"
	"herbadmin/infrastructure/config"
	httpserver "herbadmin/infrastructure/http"
	"herbadmin/infrastructure/seal"
	"herbadmin/infrastructure/sqlite"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sqlite.OpenDB(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	sealer, err := seal.New(cfg.SessionSealKey)
	if err != nil {
		log.Fatalf("init session sealer: %v", err)
	}
	if cfg.SessionSealKey == "" {
		slog.Warn("SESSION_SEAL_KEY not set; sessions will not survive a restart")
	}

	sessions := cache.NewSessionCache()
	client := backend.NewClient(cfg.BackendURL)

	server := httpserver.NewServer(cfg, db, sessions, sealer, client)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("herbadmin listening on %s", cfg.AppAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}
