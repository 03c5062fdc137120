package db

import "time"

type User struct {
	Phone        string
	Name         string
	PasswordHash string
}

type Admin struct {
	AdminID      string
	PasswordHash string
}

type Vehicle struct {
	ID           int
	Model        string
	LaunchYear   int
	Seats        int
	Mileage      int
	PricePerDay  int
	Transmission string
	Type         string
	ImagePath    string
	Available    bool
}

type Driver struct {
	ID          int
	Name        string
	Age         int
	Gender      string
	Experience  int
	PricePerDay int
	ImagePath   string
	Categories  string
	Available   bool
}

type Booking struct {
	ID         int
	VehicleID  int
	UserPhone  string
	FromDate   time.Time
	ToDate     time.Time
	BookedOn   time.Time
	TotalPrice int
}

type Hiring struct {
	ID         int
	DriverID   int
	UserPhone  string
	FromDate   time.Time
	ToDate     time.Time
	HiredOn    time.Time
	TotalPrice int
}
