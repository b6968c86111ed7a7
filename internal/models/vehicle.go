package models

import "time"

// Vehicle identifies a car by plate.
type Vehicle struct {
	ID          int64     `db:"id" json:"id"`
	Plate       string    `db:"plate" json:"plate"`
	VehicleType string    `db:"vehicle_type" json:"vehicle_type"`
	DriverName  string    `db:"driver_name" json:"driver_name"`
	Phone       string    `db:"phone" json:"phone"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
