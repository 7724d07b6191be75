package main

import (
	"log"

	"railbook/internal/config"
	"railbook/internal/db"
	"railbook/internal/model"
	"railbook/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	trainDB, err := db.Open(cfg.TrainDBPath)
	if err != nil {
		log.Fatalf("Failed to open schedule store: %v", err)
	}
	reserveDB, err := db.Open(cfg.ReserveDBPath)
	if err != nil {
		log.Fatalf("Failed to open reservation store: %v", err)
	}

	if err := trainDB.AutoMigrate(&model.Train{}); err != nil {
		log.Fatalf("Failed to migrate schedule store: %v", err)
	}
	if err := reserveDB.AutoMigrate(&model.SeatReservation{}); err != nil {
		log.Fatalf("Failed to migrate reservation store: %v", err)
	}

	if err := seed.Schedule(trainDB); err != nil {
		log.Fatalf("Failed to seed schedule: %v", err)
	}
	log.Println("Schedule seeded")

	if err := seed.Seats(reserveDB); err != nil {
		log.Fatalf("Failed to seed seats: %v", err)
	}
	log.Println("Seat rows seeded")

	log.Println("Seed completed successfully!")
}
