package service

import (
	"time"

	"rentwheels/internal/entities"
)

// HistoryBuckets is what the history page renders: per-kind active and
// previous lists. Empty buckets stay empty slices; the template decides
// what "no records" looks like.
type HistoryBuckets struct {
	ActiveBookings   []entities.BookingView
	PreviousBookings []entities.BookingView
	ActiveHirings    []entities.HiringView
	PreviousHirings  []entities.HiringView
}

func (s *BookingService) UserHistory(phone string, now time.Time) (*HistoryBuckets, error) {
	bookings, err := s.Bookings.ListBookingsByUser(phone)
	if err != nil {
		return nil, err
	}
	hirings, err := s.Bookings.ListHiringsByUser(phone)
	if err != nil {
		return nil, err
	}

	buckets := &HistoryBuckets{}
	buckets.ActiveBookings, buckets.PreviousBookings = SplitBookings(bookings, now)
	buckets.ActiveHirings, buckets.PreviousHirings = SplitHirings(hirings, now)
	return buckets, nil
}

func (s *BookingService) UserBookings(phone string) ([]entities.BookingView, error) {
	return s.Bookings.ListBookingsByUser(phone)
}

func (s *BookingService) UserHirings(phone string) ([]entities.HiringView, error) {
	return s.Bookings.ListHiringsByUser(phone)
}

func (s *BookingService) AllBookings() ([]entities.BookingView, error) {
	return s.Bookings.ListAllBookings()
}

func (s *BookingService) AllHirings() ([]entities.HiringView, error) {
	return s.Bookings.ListAllHirings()
}
