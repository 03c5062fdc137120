package entities

import "time"

// BookingView is a booking row joined with the vehicle it references,
// shaped for the history and admin pages.
type BookingView struct {
	ID           int
	VehicleModel string
	VehicleImage string
	UserPhone    string
	FromDate     time.Time
	ToDate       time.Time
	BookedOn     time.Time
	TotalPrice   int
}

// HiringView is the driver-side counterpart of BookingView.
type HiringView struct {
	ID          int
	DriverName  string
	DriverImage string
	UserPhone   string
	FromDate    time.Time
	ToDate      time.Time
	HiredOn     time.Time
	TotalPrice  int
}
