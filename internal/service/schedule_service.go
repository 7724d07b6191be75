package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"railbook/internal/errors"
	"railbook/internal/model"
	"railbook/internal/repository"
)

// Display categories for the dashboard listing.
const (
	CategoryKTX   = "KTX"
	CategoryLocal = "local"
	CategoryOther = "other"
)

const (
	prefixKTX       = "KTX"
	prefixMugunghwa = "무궁화"
)

// RouteStations lists the stops shown per category on the dashboard.
var RouteStations = map[string][]string{
	CategoryKTX:   {"서울", "천안아산", "오송", "서대전", "익산", "광주송정"},
	CategoryLocal: {"용산", "수원", "천안", "신례원", "홍성", "대천"},
}

// TrainListing is a schedule row tagged with its display category.
type TrainListing struct {
	model.Train
	Category string
}

// ScheduleService exposes the read-only train schedule.
type ScheduleService interface {
	ListTrains(ctx context.Context) ([]TrainListing, error)
	GetTrain(ctx context.Context, trainID string) (*model.Train, error)
}

type scheduleService struct {
	trainRepo repository.TrainRepository
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(trainRepo repository.TrainRepository) ScheduleService {
	return &scheduleService{trainRepo: trainRepo}
}

func (s *scheduleService) ListTrains(ctx context.Context) ([]TrainListing, error) {
	trains, err := s.trainRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	listings := make([]TrainListing, 0, len(trains))
	for _, train := range trains {
		listings = append(listings, TrainListing{
			Train:    train,
			Category: Classify(train.TrainNumber),
		})
	}
	return listings, nil
}

func (s *scheduleService) GetTrain(ctx context.Context, trainID string) (*model.Train, error) {
	train, err := s.trainRepo.FindByNumber(ctx, trainID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTrainNotFound
		}
		return nil, err
	}
	return train, nil
}

// Classify maps a train number to its display category by prefix,
// first match wins, case-sensitive.
func Classify(trainNumber string) string {
	switch {
	case strings.HasPrefix(trainNumber, prefixKTX):
		return CategoryKTX
	case strings.HasPrefix(trainNumber, prefixMugunghwa):
		return CategoryLocal
	default:
		return CategoryOther
	}
}
