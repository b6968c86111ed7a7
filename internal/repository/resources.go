package repository

import (
	"database/sql"

	"smartpark/internal/models"
)

// NewCustomerRepository returns CRUD over the customers table.
func NewCustomerRepository(db *sql.DB) *CRUDRepository[models.Customer] {
	return NewCRUDRepository(db, Resource[models.Customer]{
		Table:         "customers",
		IDColumn:      "id",
		SelectColumns: []string{"id", "name", "phone", "created_at"},
		InsertColumns: []string{"name", "phone"},
		OrderBy:       "name",
		Scan: func(rs RowScanner) (models.Customer, error) {
			var c models.Customer
			err := rs.Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt)
			return c, err
		},
		Values: func(c *models.Customer) []any {
			return []any{c.Name, c.Phone}
		},
	})
}

// NewVehicleRepository returns CRUD over the vehicles table. The plate
// column carries a unique index, so duplicate plates surface as ErrDuplicate.
func NewVehicleRepository(db *sql.DB) *CRUDRepository[models.Vehicle] {
	return NewCRUDRepository(db, Resource[models.Vehicle]{
		Table:         "vehicles",
		IDColumn:      "id",
		SelectColumns: []string{"id", "plate", "vehicle_type", "driver_name", "phone", "created_at"},
		InsertColumns: []string{"plate", "vehicle_type", "driver_name", "phone"},
		OrderBy:       "plate",
		Scan: func(rs RowScanner) (models.Vehicle, error) {
			var v models.Vehicle
			err := rs.Scan(&v.ID, &v.Plate, &v.VehicleType, &v.DriverName, &v.Phone, &v.CreatedAt)
			return v, err
		},
		Values: func(v *models.Vehicle) []any {
			return []any{v.Plate, v.VehicleType, v.DriverName, v.Phone}
		},
	})
}

// NewRateRepository returns CRUD over the rates table. Deleting a rate still
// referenced by tickets or points fails with ErrInUse.
func NewRateRepository(db *sql.DB) *CRUDRepository[models.Rate] {
	return NewCRUDRepository(db, Resource[models.Rate]{
		Table:         "rates",
		IDColumn:      "id",
		SelectColumns: []string{"id", "name", "kind", "price", "description", "created_at"},
		InsertColumns: []string{"name", "kind", "price", "description"},
		OrderBy:       "name",
		Scan: func(rs RowScanner) (models.Rate, error) {
			var r models.Rate
			err := rs.Scan(&r.ID, &r.Name, &r.Kind, &r.Price, &r.Description, &r.CreatedAt)
			return r, err
		},
		Values: func(r *models.Rate) []any {
			return []any{r.Name, r.Kind, r.Price, r.Description}
		},
	})
}

// NewServicePointRepository returns CRUD over the service_points table.
func NewServicePointRepository(db *sql.DB) *CRUDRepository[models.ServicePoint] {
	return NewCRUDRepository(db, Resource[models.ServicePoint]{
		Table:         "service_points",
		IDColumn:      "id",
		SelectColumns: []string{"id", "label", "rate_id", "status"},
		InsertColumns: []string{"label", "rate_id", "status"},
		OrderBy:       "label",
		Scan: func(rs RowScanner) (models.ServicePoint, error) {
			var p models.ServicePoint
			err := rs.Scan(&p.ID, &p.Label, &p.RateID, &p.Status)
			return p, err
		},
		Values: func(p *models.ServicePoint) []any {
			return []any{p.Label, p.RateID, p.Status}
		},
	})
}

// NewTaskRepository returns CRUD over the tasks table.
func NewTaskRepository(db *sql.DB) *CRUDRepository[models.Task] {
	return NewCRUDRepository(db, Resource[models.Task]{
		Table:         "tasks",
		IDColumn:      "id",
		SelectColumns: []string{"id", "description", "assigned_to", "status", "due_date"},
		InsertColumns: []string{"description", "assigned_to", "status", "due_date"},
		OrderBy:       "due_date",
		Scan: func(rs RowScanner) (models.Task, error) {
			var t models.Task
			err := rs.Scan(&t.ID, &t.Description, &t.AssignedTo, &t.Status, &t.DueDate)
			return t, err
		},
		Values: func(t *models.Task) []any {
			return []any{t.Description, t.AssignedTo, t.Status, t.DueDate}
		},
	})
}
