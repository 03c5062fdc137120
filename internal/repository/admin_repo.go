package repository

import (
	"database/sql"
	"errors"

	"rentwheels/internal/apperr"
	"rentwheels/internal/db"
)

// Admins are seeded out-of-band; there is no create path through the app.
type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) GetByID(adminID string) (*db.Admin, error) {
	var a db.Admin
	err := r.DB.QueryRow(`SELECT admin_id, password_hash FROM admins WHERE admin_id = $1`, adminID).
		Scan(&a.AdminID, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence("get admin", err)
	}
	return &a, nil
}
