package models

import "time"

// BillCompany is the issuing company block printed on bills.
type BillCompany struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Bill is a printable receipt composed from a payment and its ticket.
type Bill struct {
	BillNumber string      `json:"bill_number"`
	BillDate   string      `json:"bill_date"`
	Company    BillCompany `json:"company"`

	DriverName string `json:"driver_name"`
	Phone      string `json:"phone"`
	Plate      string `json:"plate"`

	TicketID      int64      `json:"ticket_id"`
	EntryTime     time.Time  `json:"entry_time"`
	ExitTime      *time.Time `json:"exit_time,omitempty"`
	DurationHours int        `json:"duration_hours"`
	RateName      string     `json:"rate_name"`
	RatePrice     float64    `json:"rate_price"`
	TotalFee      float64    `json:"total_fee"`

	PaymentID  int64     `json:"payment_id"`
	AmountPaid float64   `json:"amount_paid"`
	Method     string    `json:"method"`
	PaidAt     time.Time `json:"paid_at"`
}
