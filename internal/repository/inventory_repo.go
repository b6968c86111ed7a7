package repository

import (
	"context"
	"database/sql"

	"smartpark/internal/models"
)

// InventoryRepository handles the fuel_inventory table.
type InventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository returns repository.
func NewInventoryRepository(db *sql.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// List returns stock levels with the owning rate's name.
func (r *InventoryRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	const query = `
		SELECT i.id, i.rate_id, r.name, i.stock_liters, i.updated_at
		FROM fuel_inventory i
		JOIN rates r ON r.id = i.rate_id
		ORDER BY r.name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.RateID, &item.RateName, &item.StockLiters, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SetStock overwrites the stock level of one inventory row.
func (r *InventoryRepository) SetStock(ctx context.Context, id int64, stockLiters float64) error {
	const query = `
		UPDATE fuel_inventory
		SET stock_liters = $2, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, stockLiters)
	if err != nil {
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
