package service

import (
	"rentwheels/internal/db"
	"rentwheels/internal/repository"
)

// FleetService covers inventory: listings for the customer and admin pages
// plus the availability toggles. Toggling never checks for bookings that
// still reference the entity.
type FleetService struct {
	Vehicles *repository.VehicleRepository
	Drivers  *repository.DriverRepository
}

func NewFleetService(vehicles *repository.VehicleRepository, drivers *repository.DriverRepository) *FleetService {
	return &FleetService{Vehicles: vehicles, Drivers: drivers}
}

func (s *FleetService) AvailableVehicles() ([]db.Vehicle, error) {
	return s.Vehicles.ListAvailable()
}

func (s *FleetService) AllVehicles() ([]db.Vehicle, error) {
	return s.Vehicles.ListAll()
}

// BestDriversFirst serves the customer browse page.
func (s *FleetService) BestDriversFirst() ([]db.Driver, error) {
	return s.Drivers.ListAvailableByExperience()
}

// DriversInListingOrder serves the hiring form and admin pages.
func (s *FleetService) DriversInListingOrder() ([]db.Driver, error) {
	return s.Drivers.ListAvailableByID()
}

func (s *FleetService) AllDrivers() ([]db.Driver, error) {
	return s.Drivers.ListAll()
}

func (s *FleetService) AddVehicle(v *db.Vehicle) error {
	v.Available = true
	return s.Vehicles.Create(v)
}

func (s *FleetService) AddDriver(d *db.Driver) error {
	d.Available = true
	return s.Drivers.Create(d)
}

func (s *FleetService) SetVehicleAvailability(id int, available bool) error {
	return s.Vehicles.SetAvailability(id, available)
}

func (s *FleetService) SetDriverAvailability(id int, available bool) error {
	return s.Drivers.SetAvailability(id, available)
}
