package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smartpark/internal/billing"
	"smartpark/internal/models"
)

// TicketRepository handles persistence of service tickets.
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository returns repository.
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Open creates an ACTIVE ticket for the vehicle with the given plate.
// The vehicle lookup happens inside the insert, so a missing plate surfaces
// as ErrVehicleNotFound; a partial unique index on ACTIVE tickets turns a
// concurrent second open into ErrActiveTicketExists.
func (r *TicketRepository) Open(ctx context.Context, plate string, rateID int64, entryTime time.Time) (*models.Ticket, error) {
	const query = `
		INSERT INTO tickets (vehicle_id, rate_id, status, entry_time, created_at, updated_at)
		SELECT v.id, $2, 'ACTIVE', $3, NOW(), NOW()
		FROM vehicles v
		WHERE v.plate = $1
		RETURNING id, vehicle_id, created_at, updated_at
	`
	ticket := &models.Ticket{
		RateID:    rateID,
		Status:    models.TicketStatusActive,
		EntryTime: entryTime,
	}
	err := r.db.QueryRowContext(ctx, query, plate, rateID, entryTime).
		Scan(&ticket.ID, &ticket.VehicleID, &ticket.CreatedAt, &ticket.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrVehicleNotFound
		case isUniqueViolation(err):
			return nil, ErrActiveTicketExists
		case isForeignKeyViolation(err):
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ticket, nil
}

// Complete closes an ACTIVE ticket: the row is locked, the fee computed from
// the joined rate, and exit/duration/fee written, all in one transaction.
// A second concurrent close blocks on the row lock and then sees the ticket
// already COMPLETED.
func (r *TicketRepository) Complete(ctx context.Context, id int64, exitTime time.Time, quantity float64, policy billing.NegativeDurationPolicy) (*models.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	const lockQuery = `
		SELECT t.vehicle_id, t.rate_id, t.entry_time, t.quantity, t.created_at, r.kind, r.price
		FROM tickets t
		JOIN rates r ON r.id = t.rate_id
		WHERE t.id = $1 AND t.status = 'ACTIVE'
		FOR UPDATE OF t
	`
	ticket := &models.Ticket{ID: id, Status: models.TicketStatusCompleted}
	var (
		kind  string
		price float64
	)
	err = tx.QueryRowContext(ctx, lockQuery, id).Scan(
		&ticket.VehicleID,
		&ticket.RateID,
		&ticket.EntryTime,
		&ticket.Quantity,
		&ticket.CreatedAt,
		&kind,
		&price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if quantity > 0 {
		ticket.Quantity = quantity
	}

	hours, fee, err := billing.Charge(kind, ticket.EntryTime, exitTime, ticket.Quantity, price, policy)
	if err != nil {
		return nil, err
	}
	ticket.ExitTime = &exitTime
	ticket.DurationHours = hours
	ticket.TotalFee = fee

	const updateQuery = `
		UPDATE tickets
		SET exit_time = $2,
		    duration_hours = $3,
		    quantity = $4,
		    total_fee = $5,
		    status = 'COMPLETED',
		    updated_at = NOW()
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, updateQuery, id, exitTime, hours, ticket.Quantity, fee); err != nil {
		return nil, err
	}

	if kind == billing.KindPerLiter {
		const stockQuery = `
			UPDATE fuel_inventory
			SET stock_liters = stock_liters - $1, updated_at = NOW()
			WHERE rate_id = $2
		`
		if _, err := tx.ExecContext(ctx, stockQuery, ticket.Quantity, ticket.RateID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	ticket.UpdatedAt = exitTime
	return ticket, nil
}

const ticketDetailColumns = `
	t.id, t.vehicle_id, t.rate_id, t.status, t.entry_time, t.exit_time,
	t.duration_hours, t.quantity, t.total_fee, t.created_at, t.updated_at,
	v.plate, v.vehicle_type, v.driver_name,
	r.name, r.kind, r.price
`

func scanTicketDetail(rs RowScanner) (models.TicketDetail, error) {
	var d models.TicketDetail
	err := rs.Scan(
		&d.ID,
		&d.VehicleID,
		&d.RateID,
		&d.Status,
		&d.EntryTime,
		&d.ExitTime,
		&d.DurationHours,
		&d.Quantity,
		&d.TotalFee,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.Plate,
		&d.VehicleType,
		&d.DriverName,
		&d.RateName,
		&d.RateKind,
		&d.RatePrice,
	)
	return d, err
}

// List returns the most recent tickets with joined vehicle and rate detail.
func (r *TicketRepository) List(ctx context.Context, limit int) ([]models.TicketDetail, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT ` + ticketDetailColumns + `
		FROM tickets t
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN rates r ON r.id = t.rate_id
		ORDER BY t.entry_time DESC
		LIMIT $1
	`
	return r.queryDetails(ctx, query, limit)
}

// ListActive returns currently open tickets.
func (r *TicketRepository) ListActive(ctx context.Context, limit int) ([]models.TicketDetail, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT ` + ticketDetailColumns + `
		FROM tickets t
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN rates r ON r.id = t.rate_id
		WHERE t.status = 'ACTIVE'
		ORDER BY t.entry_time DESC
		LIMIT $1
	`
	return r.queryDetails(ctx, query, limit)
}

// Get returns one ticket with joined detail.
func (r *TicketRepository) Get(ctx context.Context, id int64) (*models.TicketDetail, error) {
	query := `
		SELECT ` + ticketDetailColumns + `
		FROM tickets t
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN rates r ON r.id = t.rate_id
		WHERE t.id = $1
	`
	detail, err := scanTicketDetail(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &detail, nil
}

func (r *TicketRepository) queryDetails(ctx context.Context, query string, args ...any) ([]models.TicketDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.TicketDetail
	for rows.Next() {
		d, err := scanTicketDetail(rows)
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
