package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"railbook/internal/config"
	"railbook/internal/db"
	"railbook/internal/handler"
	"railbook/internal/model"
	"railbook/internal/render"
	"railbook/internal/repository"
	"railbook/internal/router"
	"railbook/internal/service"
	"railbook/internal/session"
)

func main() {
	cfg := config.Load()

	e := echo.New()

	renderer, err := render.New()
	if err != nil {
		log.Fatalf("template init: %v", err)
	}
	e.Renderer = renderer

	// The three stores are independent database files; each opens its
	// own connection and bootstraps its own schema.
	userDB, err := db.Open(cfg.UserDBPath)
	if err != nil {
		log.Fatalf("user store init: %v", err)
	}
	trainDB, err := db.Open(cfg.TrainDBPath)
	if err != nil {
		log.Fatalf("schedule store init: %v", err)
	}
	reserveDB, err := db.Open(cfg.ReserveDBPath)
	if err != nil {
		log.Fatalf("reservation store init: %v", err)
	}

	if err := userDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("user store migrate: %v", err)
	}
	if err := trainDB.AutoMigrate(&model.Train{}); err != nil {
		log.Fatalf("schedule store migrate: %v", err)
	}
	if err := reserveDB.AutoMigrate(&model.SeatReservation{}); err != nil {
		log.Fatalf("reservation store migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(userDB)
	trainRepo := repository.NewTrainRepository(trainDB)
	seatRepo := repository.NewSeatRepository(reserveDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	scheduleService := service.NewScheduleService(trainRepo)
	bookingService := service.NewBookingService(seatRepo)

	sessions := session.NewManager(cfg.SessionSecret)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions)
	dashboardHandler := handler.NewDashboardHandler(scheduleService)
	bookingHandler := handler.NewBookingHandler(bookingService, scheduleService, sessions)

	// Register routes
	router.Register(e, cfg, authHandler, dashboardHandler, bookingHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
