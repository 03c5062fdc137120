package service

import (
	"log"
	"math"
	"time"

	"rentwheels/internal/apperr"
	"rentwheels/internal/db"
	"rentwheels/internal/repository"
)

type BookingService struct {
	Vehicles *repository.VehicleRepository
	Drivers  *repository.DriverRepository
	Bookings *repository.BookingRepository
	Notifier *NotifyService
}

func NewBookingService(vehicles *repository.VehicleRepository, drivers *repository.DriverRepository,
	bookings *repository.BookingRepository, notifier *NotifyService) *BookingService {
	return &BookingService{Vehicles: vehicles, Drivers: drivers, Bookings: bookings, Notifier: notifier}
}

// DayCount returns the inclusive number of calendar days between from and
// to: round((to-from)/24h) + 1. A one-day rental is from == to.
func DayCount(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours()/24)) + 1
}

// BookVehicle prices and persists a booking. The per-day rate is read from
// the stored vehicle, never from the request. Availability is not
// re-verified here and no overlap check is made against other bookings.
func (s *BookingService) BookVehicle(vehicleID int, from, to time.Time, userPhone string, bookedOn time.Time) (*db.Booking, error) {
	if to.Before(from) {
		return nil, apperr.ErrInvalidRange
	}
	vehicle, err := s.Vehicles.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}

	booking := &db.Booking{
		VehicleID:  vehicle.ID,
		UserPhone:  userPhone,
		FromDate:   from,
		ToDate:     to,
		BookedOn:   bookedOn,
		TotalPrice: DayCount(from, to) * vehicle.PricePerDay,
	}
	if err := s.Bookings.CreateBooking(booking); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		go s.Notifier.SendBookingConfirmation(userPhone, vehicle.Model, from, to, booking.TotalPrice)
	}
	log.Printf("booking %d created: vehicle %d, %s to %s, total %d",
		booking.ID, vehicle.ID, from.Format("2006-01-02"), to.Format("2006-01-02"), booking.TotalPrice)
	return booking, nil
}

// HireDriver is the driver-side twin of BookVehicle.
func (s *BookingService) HireDriver(driverID int, from, to time.Time, userPhone string, hiredOn time.Time) (*db.Hiring, error) {
	if to.Before(from) {
		return nil, apperr.ErrInvalidRange
	}
	driver, err := s.Drivers.GetByID(driverID)
	if err != nil {
		return nil, err
	}

	hiring := &db.Hiring{
		DriverID:   driver.ID,
		UserPhone:  userPhone,
		FromDate:   from,
		ToDate:     to,
		HiredOn:    hiredOn,
		TotalPrice: DayCount(from, to) * driver.PricePerDay,
	}
	if err := s.Bookings.CreateHiring(hiring); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		go s.Notifier.SendHiringConfirmation(userPhone, driver.Name, from, to, hiring.TotalPrice)
	}
	log.Printf("hiring %d created: driver %d, %s to %s, total %d",
		hiring.ID, driver.ID, from.Format("2006-01-02"), to.Format("2006-01-02"), hiring.TotalPrice)
	return hiring, nil
}
