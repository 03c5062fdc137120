package repository

import (
	"database/sql"

	"rentwheels/internal/apperr"
	"rentwheels/internal/db"
	"rentwheels/internal/entities"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) CreateBooking(b *db.Booking) error {
	query := `
		INSERT INTO bookings (vehicle_id, user_phone, from_date, to_date, booked_on, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.DB.QueryRow(query, b.VehicleID, b.UserPhone, b.FromDate, b.ToDate, b.BookedOn, b.TotalPrice).
		Scan(&b.ID)
	if err != nil {
		return apperr.Persistence("create booking", err)
	}
	return nil
}

func (r *BookingRepository) CreateHiring(h *db.Hiring) error {
	query := `
		INSERT INTO hirings (driver_id, user_phone, from_date, to_date, hired_on, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.DB.QueryRow(query, h.DriverID, h.UserPhone, h.FromDate, h.ToDate, h.HiredOn, h.TotalPrice).
		Scan(&h.ID)
	if err != nil {
		return apperr.Persistence("create hiring", err)
	}
	return nil
}

func (r *BookingRepository) ListBookingsByUser(phone string) ([]entities.BookingView, error) {
	query := `
		SELECT b.id, v.model, v.image_path, b.user_phone, b.from_date, b.to_date, b.booked_on, b.total_price
		FROM bookings b
		JOIN vehicles v ON v.id = b.vehicle_id
		WHERE b.user_phone = $1
		ORDER BY b.booked_on DESC, b.id DESC`
	return r.listBookings(query, phone)
}

func (r *BookingRepository) ListAllBookings() ([]entities.BookingView, error) {
	query := `
		SELECT b.id, v.model, v.image_path, b.user_phone, b.from_date, b.to_date, b.booked_on, b.total_price
		FROM bookings b
		JOIN vehicles v ON v.id = b.vehicle_id
		ORDER BY b.booked_on DESC, b.id DESC`
	return r.listBookings(query)
}

func (r *BookingRepository) listBookings(query string, args ...any) ([]entities.BookingView, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, apperr.Persistence("list bookings", err)
	}
	defer rows.Close()

	var bookings []entities.BookingView
	for rows.Next() {
		var b entities.BookingView
		err := rows.Scan(&b.ID, &b.VehicleModel, &b.VehicleImage, &b.UserPhone,
			&b.FromDate, &b.ToDate, &b.BookedOn, &b.TotalPrice)
		if err != nil {
			return nil, apperr.Persistence("scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("list bookings", err)
	}
	return bookings, nil
}

func (r *BookingRepository) ListHiringsByUser(phone string) ([]entities.HiringView, error) {
	query := `
		SELECT h.id, d.name, d.image_path, h.user_phone, h.from_date, h.to_date, h.hired_on, h.total_price
		FROM hirings h
		JOIN drivers d ON d.id = h.driver_id
		WHERE h.user_phone = $1
		ORDER BY h.hired_on DESC, h.id DESC`
	return r.listHirings(query, phone)
}

func (r *BookingRepository) ListAllHirings() ([]entities.HiringView, error) {
	query := `
		SELECT h.id, d.name, d.image_path, h.user_phone, h.from_date, h.to_date, h.hired_on, h.total_price
		FROM hirings h
		JOIN drivers d ON d.id = h.driver_id
		ORDER BY h.hired_on DESC, h.id DESC`
	return r.listHirings(query)
}

func (r *BookingRepository) listHirings(query string, args ...any) ([]entities.HiringView, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, apperr.Persistence("list hirings", err)
	}
	defer rows.Close()

	var hirings []entities.HiringView
	for rows.Next() {
		var h entities.HiringView
		err := rows.Scan(&h.ID, &h.DriverName, &h.DriverImage, &h.UserPhone,
			&h.FromDate, &h.ToDate, &h.HiredOn, &h.TotalPrice)
		if err != nil {
			return nil, apperr.Persistence("scan hiring", err)
		}
		hirings = append(hirings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("list hirings", err)
	}
	return hirings, nil
}
