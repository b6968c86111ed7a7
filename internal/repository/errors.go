package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound indicates a missing row.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("repository: duplicate")
	// ErrInUse indicates a row still referenced by other rows.
	ErrInUse = errors.New("repository: referenced by other records")
)

// Ticket and payment specific sentinels.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrActiveTicketExists = errors.New("vehicle already has an active ticket")
	ErrTicketNotCompleted = errors.New("ticket is not completed")
	ErrDuplicatePayment   = errors.New("payment already exists for this ticket")
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}
