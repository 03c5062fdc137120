package repository

import (
	"database/sql"
	"errors"

	"rentwheels/internal/apperr"
	"rentwheels/internal/db"
)

type DriverRepository struct {
	DB *sql.DB
}

func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{DB: db}
}

const driverColumns = `id, name, age, gender, experience, price_per_day, image_path, categories, available`

func scanDriver(row interface{ Scan(...any) error }) (db.Driver, error) {
	var d db.Driver
	err := row.Scan(&d.ID, &d.Name, &d.Age, &d.Gender, &d.Experience,
		&d.PricePerDay, &d.ImagePath, &d.Categories, &d.Available)
	return d, err
}

func (r *DriverRepository) GetByID(id int) (*db.Driver, error) {
	row := r.DB.QueryRow(`SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id)
	d, err := scanDriver(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence("get driver", err)
	}
	return &d, nil
}

// ListAvailableByExperience orders best-driver-first for the customer pages.
func (r *DriverRepository) ListAvailableByExperience() ([]db.Driver, error) {
	return r.list(`SELECT ` + driverColumns + ` FROM drivers WHERE available ORDER BY experience DESC`)
}

// ListAvailableByID keeps a stable order for the hiring form.
func (r *DriverRepository) ListAvailableByID() ([]db.Driver, error) {
	return r.list(`SELECT ` + driverColumns + ` FROM drivers WHERE available ORDER BY id`)
}

func (r *DriverRepository) ListAll() ([]db.Driver, error) {
	return r.list(`SELECT ` + driverColumns + ` FROM drivers ORDER BY id`)
}

func (r *DriverRepository) list(query string) ([]db.Driver, error) {
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, apperr.Persistence("list drivers", err)
	}
	defer rows.Close()

	var drivers []db.Driver
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, apperr.Persistence("scan driver", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("list drivers", err)
	}
	return drivers, nil
}

func (r *DriverRepository) Create(d *db.Driver) error {
	query := `
		INSERT INTO drivers (name, age, gender, experience, price_per_day, image_path, categories, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.DB.QueryRow(query, d.Name, d.Age, d.Gender, d.Experience,
		d.PricePerDay, d.ImagePath, d.Categories, d.Available).Scan(&d.ID)
	if err != nil {
		return apperr.Persistence("create driver", err)
	}
	return nil
}

func (r *DriverRepository) SetAvailability(id int, available bool) error {
	_, err := r.DB.Exec(`UPDATE drivers SET available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return apperr.Persistence("set driver availability", err)
	}
	return nil
}
