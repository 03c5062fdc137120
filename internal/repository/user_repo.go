package repository

import (
	"database/sql"
	"errors"

	"rentwheels/internal/apperr"
	"rentwheels/internal/db"

	"github.com/lib/pq"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetByPhone(phone string) (*db.User, error) {
	var u db.User
	err := r.DB.QueryRow(`SELECT phone, name, password_hash FROM users WHERE phone = $1`, phone).
		Scan(&u.Phone, &u.Name, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence("get user", err)
	}
	return &u, nil
}

// Create inserts a new user. Uniqueness of the phone number is enforced by
// the users_pkey constraint; a concurrent duplicate signup surfaces here as
// a unique violation, not at the existence check.
func (r *UserRepository) Create(u *db.User) error {
	_, err := r.DB.Exec(`INSERT INTO users (phone, name, password_hash) VALUES ($1, $2, $3)`,
		u.Phone, u.Name, u.PasswordHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return apperr.ErrDuplicatePhone
		}
		return apperr.Persistence("create user", err)
	}
	return nil
}
