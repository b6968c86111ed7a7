package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// RowScanner is satisfied by both *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// Resource describes one table for the generic CRUD repository. The three
// source apps hand-wrote near-identical SQL per entity; this parameterizes
// it instead.
type Resource[T any] struct {
	Table         string
	IDColumn      string
	SelectColumns []string // read set, id first
	InsertColumns []string // writable subset, matches Values order
	OrderBy       string

	Scan   func(rs RowScanner) (T, error)
	Values func(t *T) []any
}

// CRUDRepository provides list/get/create/update/delete over one table.
type CRUDRepository[T any] struct {
	db  *sql.DB
	res Resource[T]
}

// NewCRUDRepository returns a repository for the given resource.
func NewCRUDRepository[T any](db *sql.DB, res Resource[T]) *CRUDRepository[T] {
	return &CRUDRepository[T]{db: db, res: res}
}

// List returns all rows ordered by the resource's OrderBy clause.
func (r *CRUDRepository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, listSQL(r.res.Table, r.res.SelectColumns, r.res.OrderBy))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := r.res.Scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns a single row by id.
func (r *CRUDRepository[T]) Get(ctx context.Context, id int64) (*T, error) {
	row := r.db.QueryRowContext(ctx, getSQL(r.res.Table, r.res.SelectColumns, r.res.IDColumn), id)
	item, err := r.res.Scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a row and returns the generated id.
func (r *CRUDRepository[T]) Create(ctx context.Context, item *T) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		insertSQL(r.res.Table, r.res.InsertColumns, r.res.IDColumn),
		r.res.Values(item)...,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

// Update overwrites the writable columns of the row with the given id.
func (r *CRUDRepository[T]) Update(ctx context.Context, id int64, item *T) error {
	args := append(r.res.Values(item), id)
	result, err := r.db.ExecContext(ctx, updateSQL(r.res.Table, r.res.InsertColumns, r.res.IDColumn), args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row with the given id. Rows still referenced elsewhere
// (e.g. a rate referenced by tickets) return ErrInUse.
func (r *CRUDRepository[T]) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, deleteSQL(r.res.Table, r.res.IDColumn), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrInUse
		}
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func listSQL(table string, columns []string, orderBy string) string {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), table)
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}
	return query
}

func getSQL(table string, columns []string, idColumn string) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", strings.Join(columns, ", "), table, idColumn)
}

func insertSQL(table string, columns []string, idColumn string) string {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "), idColumn)
}

func updateSQL(table string, columns []string, idColumn string) string {
	assignments := make([]string, len(columns))
	for i, col := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(assignments, ", "), idColumn, len(columns)+1)
}

func deleteSQL(table, idColumn string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, idColumn)
}
