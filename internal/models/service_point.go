package models

// Service point statuses.
const (
	PointStatusAvailable   = "available"
	PointStatusOccupied    = "occupied"
	PointStatusMaintenance = "maintenance"
)

// ServicePoint is a billable resource: a fuel pump, parking slot or wash bay.
type ServicePoint struct {
	ID     int64  `db:"id" json:"id"`
	Label  string `db:"label" json:"label"`
	RateID int64  `db:"rate_id" json:"rate_id"`
	Status string `db:"status" json:"status"`
}
