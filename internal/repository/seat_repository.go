package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"railbook/internal/model"
)

// SeatRepository defines seat reservation store persistence operations.
type SeatRepository interface {
	ListByTrain(ctx context.Context, trainID string) ([]model.SeatReservation, error)
	Find(ctx context.Context, trainID, seatID string) (*model.SeatReservation, error)
	// Reserve marks the seat reserved iff it is currently unreserved and
	// reports whether the row was claimed. The conditional update is the
	// only write the store ever sees, so two racing bookers cannot both
	// win the same seat.
	Reserve(ctx context.Context, trainID, seatID, userID string, at time.Time) (bool, error)
}

type seatRepository struct {
	db *gorm.DB
}

// NewSeatRepository builds a GORM-backed repository.
func NewSeatRepository(db *gorm.DB) SeatRepository {
	return &seatRepository{db: db}
}

func (r *seatRepository) ListByTrain(ctx context.Context, trainID string) ([]model.SeatReservation, error) {
	var seats []model.SeatReservation
	if err := r.db.WithContext(ctx).Where("train_id = ?", trainID).Order("seat_id").Find(&seats).Error; err != nil {
		return nil, err
	}
	return seats, nil
}

func (r *seatRepository) Find(ctx context.Context, trainID, seatID string) (*model.SeatReservation, error) {
	var seat model.SeatReservation
	if err := r.db.WithContext(ctx).
		Where("train_id = ? AND seat_id = ?", trainID, seatID).
		First(&seat).Error; err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *seatRepository) Reserve(ctx context.Context, trainID, seatID, userID string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.SeatReservation{}).
		Where("train_id = ? AND seat_id = ? AND is_reserved = ?", trainID, seatID, false).
		Updates(map[string]interface{}{
			"is_reserved": true,
			"reserved_by": userID,
			"reserved_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
