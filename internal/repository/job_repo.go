package repository

import (
	"database/sql"
	"time"

	"rentwheels/internal/apperr"
)

// JobRepository serves the scheduled summary job.
type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

func (r *JobRepository) CountBookingsEndingOn(day time.Time) (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE to_date = $1`, day).Scan(&n)
	if err != nil {
		return 0, apperr.Persistence("count bookings ending", err)
	}
	return n, nil
}

func (r *JobRepository) CountHiringsEndingOn(day time.Time) (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM hirings WHERE to_date = $1`, day).Scan(&n)
	if err != nil {
		return 0, apperr.Persistence("count hirings ending", err)
	}
	return n, nil
}
