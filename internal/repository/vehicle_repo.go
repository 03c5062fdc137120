package repository

import (
	"database/sql"
	"errors"

	"rentwheels/internal/apperr"
	"rentwheels/internal/db"
)

type VehicleRepository struct {
	DB *sql.DB
}

func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{DB: db}
}

const vehicleColumns = `id, model, launch_year, seats, mileage, price_per_day, transmission, vtype, image_path, available`

func scanVehicle(row interface{ Scan(...any) error }) (db.Vehicle, error) {
	var v db.Vehicle
	err := row.Scan(&v.ID, &v.Model, &v.LaunchYear, &v.Seats, &v.Mileage,
		&v.PricePerDay, &v.Transmission, &v.Type, &v.ImagePath, &v.Available)
	return v, err
}

func (r *VehicleRepository) GetByID(id int) (*db.Vehicle, error) {
	row := r.DB.QueryRow(`SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence("get vehicle", err)
	}
	return &v, nil
}

func (r *VehicleRepository) ListAvailable() ([]db.Vehicle, error) {
	return r.list(`SELECT ` + vehicleColumns + ` FROM vehicles WHERE available ORDER BY id`)
}

// ListAll backs the admin inventory page, unavailable rows included.
func (r *VehicleRepository) ListAll() ([]db.Vehicle, error) {
	return r.list(`SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY id`)
}

func (r *VehicleRepository) list(query string) ([]db.Vehicle, error) {
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, apperr.Persistence("list vehicles", err)
	}
	defer rows.Close()

	var vehicles []db.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, apperr.Persistence("scan vehicle", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("list vehicles", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) Create(v *db.Vehicle) error {
	query := `
		INSERT INTO vehicles (model, launch_year, seats, mileage, price_per_day, transmission, vtype, image_path, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.DB.QueryRow(query, v.Model, v.LaunchYear, v.Seats, v.Mileage,
		v.PricePerDay, v.Transmission, v.Type, v.ImagePath, v.Available).Scan(&v.ID)
	if err != nil {
		return apperr.Persistence("create vehicle", err)
	}
	return nil
}

// SetAvailability is idempotent: re-applying the current value is a no-op.
func (r *VehicleRepository) SetAvailability(id int, available bool) error {
	_, err := r.DB.Exec(`UPDATE vehicles SET available = $1 WHERE id = $2`, available, id)
	if err != nil {
		return apperr.Persistence("set vehicle availability", err)
	}
	return nil
}
