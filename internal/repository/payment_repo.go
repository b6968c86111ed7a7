package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smartpark/internal/models"
)

// PaymentRepository handles the payments table.
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository returns repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create records a payment against a completed, unpaid ticket. The ticket
// row is locked for the duration of the check-then-insert, and a unique
// index on payments.ticket_id backs the at-most-one invariant.
func (r *PaymentRepository) Create(ctx context.Context, ticketID int64, amount float64, method string) (*models.Payment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM tickets WHERE id = $1 FOR UPDATE`, ticketID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	if status != models.TicketStatusCompleted {
		return nil, ErrTicketNotCompleted
	}

	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM payments WHERE ticket_id = $1)`, ticketID,
	).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePayment
	}

	payment := &models.Payment{
		TicketID:   ticketID,
		AmountPaid: amount,
		Method:     method,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO payments (ticket_id, amount_paid, method, paid_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, paid_at
	`, ticketID, amount, method).Scan(&payment.ID, &payment.PaidAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicatePayment
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return payment, nil
}

const paymentDetailColumns = `
	p.id, p.ticket_id, p.amount_paid, p.method, p.paid_at,
	v.plate, v.driver_name,
	t.entry_time, t.exit_time, t.total_fee,
	r.name
`

func scanPaymentDetail(rs RowScanner) (models.PaymentDetail, error) {
	var d models.PaymentDetail
	err := rs.Scan(
		&d.ID,
		&d.TicketID,
		&d.AmountPaid,
		&d.Method,
		&d.PaidAt,
		&d.Plate,
		&d.DriverName,
		&d.EntryTime,
		&d.ExitTime,
		&d.TotalFee,
		&d.RateName,
	)
	return d, err
}

// List returns recent payments with joined ticket and vehicle detail.
func (r *PaymentRepository) List(ctx context.Context, limit int) ([]models.PaymentDetail, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT ` + paymentDetailColumns + `
		FROM payments p
		JOIN tickets t ON t.id = p.ticket_id
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN rates r ON r.id = t.rate_id
		ORDER BY p.paid_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.PaymentDetail
	for rows.Next() {
		d, err := scanPaymentDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

// Get returns one payment with joined detail.
func (r *PaymentRepository) Get(ctx context.Context, id int64) (*models.PaymentDetail, error) {
	query := `
		SELECT ` + paymentDetailColumns + `
		FROM payments p
		JOIN tickets t ON t.id = p.ticket_id
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN rates r ON r.id = t.rate_id
		WHERE p.id = $1
	`
	detail, err := scanPaymentDetail(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &detail, nil
}

// GetBill loads everything a printable bill needs for one payment.
func (r *PaymentRepository) GetBill(ctx context.Context, paymentID int64, company models.BillCompany, now time.Time) (*models.Bill, error) {
	const query = `
		SELECT
			p.id, p.amount_paid, p.method, p.paid_at,
			t.id, t.entry_time, t.exit_time, t.duration_hours, t.total_fee,
			v.plate, v.driver_name, v.phone,
			r.name, r.price
		FROM payments p
		JOIN tickets t ON t.id = p.ticket_id
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN rates r ON r.id = t.rate_id
		WHERE p.id = $1
	`
	var bill models.Bill
	err := r.db.QueryRowContext(ctx, query, paymentID).Scan(
		&bill.PaymentID,
		&bill.AmountPaid,
		&bill.Method,
		&bill.PaidAt,
		&bill.TicketID,
		&bill.EntryTime,
		&bill.ExitTime,
		&bill.DurationHours,
		&bill.TotalFee,
		&bill.Plate,
		&bill.DriverName,
		&bill.Phone,
		&bill.RateName,
		&bill.RatePrice,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bill.BillDate = now.UTC().Format("2006-01-02")
	bill.BillNumber = fmt.Sprintf("BILL-%s-%05d", bill.BillDate, bill.PaymentID)
	bill.Company = company
	return &bill, nil
}
