package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"railbook/internal/errors"
	"railbook/internal/repository"
)

// BookingService handles the seat map and the one state-changing
// operation: marking a seat reserved by a user.
type BookingService interface {
	// SeatMap returns seat id -> reserving user for one train;
	// unreserved seats map to "".
	SeatMap(ctx context.Context, trainID string) (map[string]string, error)
	// CheckAvailable is the advisory probe run before the confirm page.
	// It reports ErrSeatTaken or ErrSeatNotFound; a nil error only means
	// the seat was free at the moment of the read.
	CheckAvailable(ctx context.Context, trainID, seatID string) error
	// Finalize atomically reserves the seat for the user and returns a
	// booking reference. A seat that is already reserved reports
	// ErrSeatTaken and is never overwritten.
	Finalize(ctx context.Context, trainID, seatID, userID string) (string, error)
}

type bookingService struct {
	seatRepo repository.SeatRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(seatRepo repository.SeatRepository) BookingService {
	return &bookingService{seatRepo: seatRepo}
}

func (s *bookingService) SeatMap(ctx context.Context, trainID string) (map[string]string, error) {
	seats, err := s.seatRepo.ListByTrain(ctx, trainID)
	if err != nil {
		return nil, err
	}

	status := make(map[string]string, len(seats))
	for _, seat := range seats {
		status[seat.SeatID] = seat.ReservedBy
	}
	return status, nil
}

func (s *bookingService) CheckAvailable(ctx context.Context, trainID, seatID string) error {
	seat, err := s.seatRepo.Find(ctx, trainID, seatID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrSeatNotFound
		}
		slog.Error("seat probe failed", "op", "confirm", "train_id", trainID, "seat_id", seatID, "error", err)
		return fmt.Errorf("check seat: %w", err)
	}
	if seat.IsReserved {
		return errors.ErrSeatTaken
	}
	return nil
}

func (s *bookingService) Finalize(ctx context.Context, trainID, seatID, userID string) (string, error) {
	reserved, err := s.seatRepo.Reserve(ctx, trainID, seatID, userID, time.Now())
	if err != nil {
		slog.Error("finalize failed", "op", "book", "train_id", trainID, "seat_id", seatID, "user_id", userID, "error", err)
		return "", fmt.Errorf("reserve seat: %w", err)
	}

	if !reserved {
		// The conditional update matched nothing: either the row does not
		// exist or another booker already holds it.
		if _, err := s.seatRepo.Find(ctx, trainID, seatID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return "", errors.ErrSeatNotFound
			}
			slog.Error("finalize recheck failed", "op", "book", "train_id", trainID, "seat_id", seatID, "error", err)
			return "", fmt.Errorf("recheck seat: %w", err)
		}
		return "", errors.ErrSeatTaken
	}

	return uuid.New().String(), nil
}
