package model

// Train represents one row of the static schedule: a numbered service
// between two stations. Seeded once by cmd/seed and never mutated.
type Train struct {
	TrainNumber      string `json:"train_number" gorm:"primaryKey;size:32"`
	DepartureStation string `json:"departure_station" gorm:"size:64;not null"`
	ArrivalStation   string `json:"arrival_station" gorm:"size:64;not null"`
	DepartureTime    string `json:"departure_time" gorm:"size:16"`
	ArrivalTime      string `json:"arrival_time" gorm:"size:16"`
	TotalSeats       int    `json:"total_seats"`
}

// TableName keeps the schedule table name used by the seeded database files.
func (Train) TableName() string {
	return "train_info"
}
