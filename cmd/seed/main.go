package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"barber-scheduling-service/internal/config"
	barberRepo "barber-scheduling-service/internal/infra/storage/barber"
	scheduleRepo "barber-scheduling-service/internal/infra/storage/schedule"
)

// Имена барберов, которые заводятся при первом запуске
var seedBarbers = []string{"Алексей", "Дмитрий"}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if err := db.PingContext(ctx); err != nil {
		fmt.Printf("Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	barbers := barberRepo.NewRepository(db)
	schedules := scheduleRepo.NewRepository(db)

	existing, err := barbers.List(ctx, false)
	if err != nil {
		fmt.Printf("Failed to list barbers: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		fmt.Printf("Database already has %d barbers, nothing to seed\n", len(existing))
		return
	}

	for _, name := range seedBarbers {
		barber, err := barbers.Create(ctx, name)
		if err != nil {
			fmt.Printf("Failed to create barber %q: %v\n", name, err)
			os.Exit(1)
		}

		// GetConfig заводит строку конфигурации с дефолтным расписанием
		if _, err := schedules.GetConfig(ctx, barber.ID); err != nil {
			fmt.Printf("Failed to create schedule config for barber %d: %v\n", barber.ID, err)
			os.Exit(1)
		}

		fmt.Printf("Created barber %q (id=%d) with default schedule\n", barber.Name, barber.ID)
	}
}
