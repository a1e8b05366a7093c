package main

import (
	"context"
	"log"

	"github.com/home-design-app/home-design-backend/config"
	"github.com/home-design-app/home-design-backend/internal/bootstrap"
	"github.com/home-design-app/home-design-backend/internal/db"
	"github.com/home-design-app/home-design-backend/internal/furniture"
	"github.com/home-design-app/home-design-backend/internal/uploads"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	database, err := db.Open(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(ctx, database.Pool); err != nil {
		log.Fatalf("schema: %v", err)
	}

	files, err := uploads.NewStore(cfg.Storage.ModelsDir(), cfg.Storage.ThumbnailsDir())
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	// Seed the default catalog before serving traffic; idempotent across
	// restarts.
	if err := furniture.SeedDefaults(ctx, furniture.NewRepo(database.Pool)); err != nil {
		log.Fatalf("seed furniture: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "home-design-backend",
		Version:     cfg.App.Version,
		DB:          database.Pool,
		Files:       files,
		Storage:     cfg.Storage,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
