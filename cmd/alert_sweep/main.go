package main

import (
	"context"
	"log"
	"os"

	"oficina/internal/database"
	"oficina/internal/modules/alerta"
	"oficina/internal/repository"

	"github.com/joho/godotenv"
)

// One-shot alert sweep for cron-style scheduling. The API runs the same
// sweep on a ticker; this binary exists for deployments that prefer an
// external scheduler.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	sweeper := alerta.NewSweeper(
		repository.NewAlertaRepository(db),
		repository.NewOrderRepository(db),
		repository.NewUserRepository(db),
		nil,
	)

	created, err := sweeper.Run(context.Background(), alerta.DefaultSweepConfig())
	if err != nil {
		log.Fatalf("alert sweep failed: %v", err)
	}

	log.Printf("alert sweep completed: created=%d", created)
}
