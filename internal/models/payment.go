package models

import "time"

// PaymentMethodCash is the default when no method is supplied.
const PaymentMethodCash = "CASH"

// Payment records money collected against a completed ticket. A ticket has
// at most one payment.
type Payment struct {
	ID         int64     `db:"id" json:"id"`
	TicketID   int64     `db:"ticket_id" json:"ticket_id"`
	AmountPaid float64   `db:"amount_paid" json:"amount_paid"`
	Method     string    `db:"method" json:"method"`
	PaidAt     time.Time `db:"paid_at" json:"paid_at"`
}

// PaymentDetail carries joined ticket and vehicle columns for list views.
type PaymentDetail struct {
	Payment
	Plate      string     `json:"plate"`
	DriverName string     `json:"driver_name"`
	EntryTime  time.Time  `json:"entry_time"`
	ExitTime   *time.Time `json:"exit_time,omitempty"`
	TotalFee   float64    `json:"total_fee"`
	RateName   string     `json:"rate_name"`
}
