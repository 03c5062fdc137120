package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentwheels/internal/apperr"
	"rentwheels/internal/repository"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayCount(t *testing.T) {
	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", date(2024, 1, 1), date(2024, 1, 1), 1},
		{"three days", date(2024, 1, 1), date(2024, 1, 3), 3},
		{"across month boundary", date(2024, 1, 31), date(2024, 2, 2), 3},
		{"across year boundary", date(2023, 12, 30), date(2024, 1, 2), 4},
		{"full week", date(2024, 3, 4), date(2024, 3, 10), 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DayCount(tc.from, tc.to))
		})
	}
}

func newBookingService(t *testing.T) (*BookingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := NewBookingService(
		repository.NewVehicleRepository(db),
		repository.NewDriverRepository(db),
		repository.NewBookingRepository(db),
		nil,
	)
	return svc, mock
}

func TestBookVehicleComputesTotalFromStoredRate(t *testing.T) {
	svc, mock := newBookingService(t)

	from := date(2024, 1, 1)
	to := date(2024, 1, 3)
	bookedOn := date(2024, 1, 1)

	vehicleRows := sqlmock.NewRows([]string{
		"id", "model", "launch_year", "seats", "mileage", "price_per_day",
		"transmission", "vtype", "image_path", "available",
	}).AddRow(5, "Swift", 2022, 5, 21, 1000, "manual", "hatchback", "/static/images/swift.jpg", true)
	mock.ExpectQuery(`SELECT (.+) FROM vehicles WHERE id = \$1`).
		WithArgs(5).
		WillReturnRows(vehicleRows)
	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(5, "9999999999", from, to, bookedOn, 3000).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	booking, err := svc.BookVehicle(5, from, to, "9999999999", bookedOn)
	require.NoError(t, err)
	assert.Equal(t, 1, booking.ID)
	assert.Equal(t, 3000, booking.TotalPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookVehicleRejectsInvertedRange(t *testing.T) {
	svc, mock := newBookingService(t)

	_, err := svc.BookVehicle(5, date(2024, 1, 3), date(2024, 1, 1), "9999999999", date(2024, 1, 1))
	assert.ErrorIs(t, err, apperr.ErrInvalidRange)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookVehicleUnknownVehicle(t *testing.T) {
	svc, mock := newBookingService(t)

	mock.ExpectQuery(`SELECT (.+) FROM vehicles WHERE id = \$1`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.BookVehicle(42, date(2024, 1, 1), date(2024, 1, 2), "9999999999", date(2024, 1, 1))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestHireDriverComputesTotalFromStoredRate(t *testing.T) {
	svc, mock := newBookingService(t)

	from := date(2024, 2, 10)
	to := date(2024, 2, 14)
	hiredOn := date(2024, 2, 9)

	driverRows := sqlmock.NewRows([]string{
		"id", "name", "age", "gender", "experience", "price_per_day",
		"image_path", "categories", "available",
	}).AddRow(3, "Ravi", 40, "male", 15, 500, "/static/images/ravi.jpg", "sedan,suv", true)
	mock.ExpectQuery(`SELECT (.+) FROM drivers WHERE id = \$1`).
		WithArgs(3).
		WillReturnRows(driverRows)
	mock.ExpectQuery(`INSERT INTO hirings`).
		WithArgs(3, "9999999999", from, to, hiredOn, 2500).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	hiring, err := svc.HireDriver(3, from, to, "9999999999", hiredOn)
	require.NoError(t, err)
	assert.Equal(t, 7, hiring.ID)
	assert.Equal(t, 2500, hiring.TotalPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}
