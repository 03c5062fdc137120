package api

import (
	"rentwheels/internal/db"
	"rentwheels/internal/entities"
	"rentwheels/internal/service"
)

// Page payloads. Message carries inline notices (failed reads, rejected
// forms); templates check emptiness of the lists directly.

type PageData struct {
	LoggedIn bool
	Message  string
}

type VehicleListData struct {
	PageData
	Vehicles []db.Vehicle
}

type DriverListData struct {
	PageData
	Drivers []db.Driver
}

type HistoryData struct {
	PageData
	Buckets *service.HistoryBuckets
}

type RentalListData struct {
	PageData
	Bookings []entities.BookingView
	Hirings  []entities.HiringView
}
