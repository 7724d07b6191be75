package seed

import (
	"fmt"

	"gorm.io/gorm"

	"railbook/internal/model"
)

// Schedule rows and per-train seat layouts. Two services, ten seat rows
// each; columns differ per rolling stock.
var trains = []model.Train{
	{TrainNumber: "KTX301", DepartureStation: "서울", ArrivalStation: "광주송정", DepartureTime: "10:30", ArrivalTime: "12:00", TotalSeats: 50},
	{TrainNumber: "무궁화2680", DepartureStation: "대천", ArrivalStation: "용산", DepartureTime: "15:00", ArrivalTime: "17:00", TotalSeats: 40},
}

var seatColumns = map[string][]string{
	"KTX301":   {"A", "B", "C", "D", "E"},
	"무궁화2680": {"A", "B", "C", "D"},
}

const seatRows = 10

// Schedule inserts the train schedule rows. Safe to run repeatedly;
// existing rows are left as they are.
func Schedule(db *gorm.DB) error {
	for _, train := range trains {
		if err := db.Where(model.Train{TrainNumber: train.TrainNumber}).FirstOrCreate(&train).Error; err != nil {
			return fmt.Errorf("seed train %s: %w", train.TrainNumber, err)
		}
	}
	return nil
}

// Seats inserts one unreserved reservation row per seat per train.
// Safe to run repeatedly; reserved seats are never touched.
func Seats(db *gorm.DB) error {
	for trainID, cols := range seatColumns {
		for row := 1; row <= seatRows; row++ {
			for _, col := range cols {
				seat := model.SeatReservation{
					SeatID:  fmt.Sprintf("%d%s", row, col),
					TrainID: trainID,
				}
				if err := db.Where(model.SeatReservation{SeatID: seat.SeatID, TrainID: seat.TrainID}).
					FirstOrCreate(&seat).Error; err != nil {
					return fmt.Errorf("seed seat %s on %s: %w", seat.SeatID, trainID, err)
				}
			}
		}
	}
	return nil
}
