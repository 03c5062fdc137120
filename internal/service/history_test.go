package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rentwheels/internal/entities"
)

func booking(to time.Time) entities.BookingView {
	return entities.BookingView{VehicleModel: "Swift", ToDate: to}
}

func TestSplitBookingsEmpty(t *testing.T) {
	active, previous := SplitBookings(nil, date(2024, 6, 15))
	assert.Empty(t, active)
	assert.Empty(t, previous)
	assert.NotNil(t, active)
	assert.NotNil(t, previous)
}

func TestSplitBookings(t *testing.T) {
	now := date(2024, 6, 15)
	cases := []struct {
		name   string
		to     time.Time
		active bool
	}{
		{"ends today", date(2024, 6, 15), true},
		{"ended yesterday", date(2024, 6, 14), false},
		{"ends tomorrow", date(2024, 6, 16), true},
		{"ends next month", date(2024, 7, 1), true},
		{"ended last month", date(2024, 5, 31), false},
		{"ends next year", date(2025, 1, 1), true},
		{"ended last year", date(2023, 12, 31), false},
		{"next year earlier month", date(2025, 2, 1), true},
		{"last year later month", date(2023, 12, 16), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			active, previous := SplitBookings([]entities.BookingView{booking(tc.to)}, now)
			if tc.active {
				assert.Len(t, active, 1)
				assert.Empty(t, previous)
			} else {
				assert.Empty(t, active)
				assert.Len(t, previous, 1)
			}
		})
	}
}

func TestSplitBookingsKeepsOrderWithinBuckets(t *testing.T) {
	now := date(2024, 6, 15)
	records := []entities.BookingView{
		{ID: 1, ToDate: date(2024, 6, 20)},
		{ID: 2, ToDate: date(2024, 6, 1)},
		{ID: 3, ToDate: date(2024, 6, 15)},
		{ID: 4, ToDate: date(2024, 1, 2)},
	}
	active, previous := SplitBookings(records, now)
	assert.Equal(t, []int{1, 3}, []int{active[0].ID, active[1].ID})
	assert.Equal(t, []int{2, 4}, []int{previous[0].ID, previous[1].ID})
}

func TestSplitHirings(t *testing.T) {
	now := date(2024, 6, 15)
	records := []entities.HiringView{
		{ID: 1, ToDate: date(2024, 6, 15)},
		{ID: 2, ToDate: date(2024, 6, 14)},
	}
	active, previous := SplitHirings(records, now)
	assert.Len(t, active, 1)
	assert.Equal(t, 1, active[0].ID)
	assert.Len(t, previous, 1)
	assert.Equal(t, 2, previous[0].ID)
}
