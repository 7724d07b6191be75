package repository

import (
	"context"

	"gorm.io/gorm"

	"railbook/internal/model"
)

// TrainRepository defines schedule store persistence operations.
// The schedule is read-only at runtime; rows come from cmd/seed.
type TrainRepository interface {
	List(ctx context.Context) ([]model.Train, error)
	FindByNumber(ctx context.Context, trainNumber string) (*model.Train, error)
}

type trainRepository struct {
	db *gorm.DB
}

// NewTrainRepository builds a GORM-backed repository.
func NewTrainRepository(db *gorm.DB) TrainRepository {
	return &trainRepository{db: db}
}

func (r *trainRepository) List(ctx context.Context) ([]model.Train, error) {
	var trains []model.Train
	if err := r.db.WithContext(ctx).Order("train_number").Find(&trains).Error; err != nil {
		return nil, err
	}
	return trains, nil
}

func (r *trainRepository) FindByNumber(ctx context.Context, trainNumber string) (*model.Train, error) {
	var train model.Train
	if err := r.db.WithContext(ctx).Where("train_number = ?", trainNumber).First(&train).Error; err != nil {
		return nil, err
	}
	return &train, nil
}
