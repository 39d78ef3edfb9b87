package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	now := time.Date(2026, 8, 23, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		startsAt time.Time
		want     BookingStatus
	}{
		{"yesterday", now.AddDate(0, 0, -1), BookingStatusPast},
		{"earlier today", time.Date(2026, 8, 23, 6, 0, 0, 0, time.UTC), BookingStatusToday},
		{"later today", time.Date(2026, 8, 23, 23, 59, 0, 0, time.UTC), BookingStatusToday},
		{"tomorrow midnight", time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), BookingStatusUpcoming},
		{"next month", now.AddDate(0, 1, 0), BookingStatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.startsAt, now))
		})
	}
}

func TestStatusFor_ComparesCalendarDaysNotInstants(t *testing.T) {
	// An activity that started two hours ago is still "today", not "past".
	now := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	startsAt := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, BookingStatusToday, StatusFor(startsAt, now))
}

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, BookingStatusPast.Valid())
	assert.True(t, BookingStatusToday.Valid())
	assert.True(t, BookingStatusUpcoming.Valid())
	assert.False(t, BookingStatus("cancelled").Valid())
	assert.False(t, BookingStatus("").Valid())
}
