package models

import "time"

// InventoryItem tracks remaining fuel stock for a per-liter rate.
type InventoryItem struct {
	ID          int64     `db:"id" json:"id"`
	RateID      int64     `db:"rate_id" json:"rate_id"`
	RateName    string    `db:"rate_name" json:"rate_name"`
	StockLiters float64   `db:"stock_liters" json:"stock_liters"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
