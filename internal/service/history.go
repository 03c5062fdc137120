package service

import (
	"time"

	"rentwheels/internal/entities"
)

// endsTodayOrLater compares the end date to now field by field: a later
// year wins outright, then a later month within the same year, and the day
// is only consulted when year and month both match. A record ending today
// counts as active.
func endsTodayOrLater(to, now time.Time) bool {
	ty, tm, td := to.Date()
	ny, nm, nd := now.Date()
	if ty != ny {
		return ty > ny
	}
	if tm != nm {
		return tm > nm
	}
	return td >= nd
}

// SplitBookings partitions bookings into active (ending today or later) and
// previous buckets. Both buckets may be empty slices; callers decide how to
// present emptiness.
func SplitBookings(records []entities.BookingView, now time.Time) (active, previous []entities.BookingView) {
	active = []entities.BookingView{}
	previous = []entities.BookingView{}
	for _, rec := range records {
		if endsTodayOrLater(rec.ToDate, now) {
			active = append(active, rec)
		} else {
			previous = append(previous, rec)
		}
	}
	return active, previous
}

// SplitHirings is the driver-side counterpart of SplitBookings.
func SplitHirings(records []entities.HiringView, now time.Time) (active, previous []entities.HiringView) {
	active = []entities.HiringView{}
	previous = []entities.HiringView{}
	for _, rec := range records {
		if endsTodayOrLater(rec.ToDate, now) {
			active = append(active, rec)
		} else {
			previous = append(previous, rec)
		}
	}
	return active, previous
}
