package model

import "time"

// SeatReservation is one seat on one train. Rows are pre-seeded unreserved
// (one per seat per train) and flip to reserved at most once; they are never
// deleted or reverted.
type SeatReservation struct {
	SeatID     string     `json:"seat_id" gorm:"primaryKey;size:8"`
	TrainID    string     `json:"train_id" gorm:"primaryKey;size:32"`
	IsReserved bool       `json:"is_reserved" gorm:"not null;default:false"`
	ReservedBy string     `json:"reserved_by" gorm:"size:64"`
	ReservedAt *time.Time `json:"reserved_at"`
}

// TableName keeps the reservation table name used by the seeded database files.
func (SeatReservation) TableName() string {
	return "reserve"
}
