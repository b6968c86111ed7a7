package models

import "time"

// Ticket statuses.
const (
	TicketStatusActive    = "ACTIVE"
	TicketStatusCompleted = "COMPLETED"
)

// Ticket is a billable service interval: opened when a vehicle starts
// occupying a point, closed once with the computed fee.
type Ticket struct {
	ID            int64      `db:"id" json:"id"`
	VehicleID     int64      `db:"vehicle_id" json:"vehicle_id"`
	RateID        int64      `db:"rate_id" json:"rate_id"`
	Status        string     `db:"status" json:"status"`
	EntryTime     time.Time  `db:"entry_time" json:"entry_time"`
	ExitTime      *time.Time `db:"exit_time" json:"exit_time,omitempty"`
	DurationHours int        `db:"duration_hours" json:"duration_hours"`
	Quantity      float64    `db:"quantity" json:"quantity"`
	TotalFee      float64    `db:"total_fee" json:"total_fee"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// TicketDetail carries the joined vehicle and rate columns list views need.
type TicketDetail struct {
	Ticket
	Plate       string  `json:"plate"`
	VehicleType string  `json:"vehicle_type"`
	DriverName  string  `json:"driver_name"`
	RateName    string  `json:"rate_name"`
	RateKind    string  `json:"rate_kind"`
	RatePrice   float64 `json:"rate_price"`
}
