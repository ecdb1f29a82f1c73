package main

import (
	"context"
	"log"

	"youth-policy-backend/internal/bootstrap"
	"youth-policy-backend/internal/server"
	"youth-policy-backend/internal/shared/config"
	"youth-policy-backend/internal/shared/storage/db"
	"youth-policy-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if app.DB != nil {
		if err := db.RunMigrations(context.Background(), app.DB); err != nil {
			log.Fatalf("migrations: %v", err)
		}
		defer app.DB.Close()
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr": addr,
		"env":  cfg.Env,
	})
	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
