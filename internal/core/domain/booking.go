package domain

import "time"

type BookingStatus string

const (
	BookingStatusPast     BookingStatus = "past"
	BookingStatusToday    BookingStatus = "today"
	BookingStatusUpcoming BookingStatus = "upcoming"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPast, BookingStatusToday, BookingStatusUpcoming:
		return true
	}
	return false
}

// StatusFor derives the booking status from the activity start time.
// Comparison is by calendar day in UTC, not by instant.
func StatusFor(startsAt, now time.Time) BookingStatus {
	ad := startsAt.UTC().Truncate(24 * time.Hour)
	nd := now.UTC().Truncate(24 * time.Hour)
	switch {
	case ad.Before(nd):
		return BookingStatusPast
	case ad.Equal(nd):
		return BookingStatusToday
	default:
		return BookingStatusUpcoming
	}
}

type Booking struct {
	ID         int64         `json:"id"`
	UserID     int64         `json:"user_id"`
	ActivityID int64         `json:"activity_id"`
	Tickets    int           `json:"tickets"`
	Status     BookingStatus `json:"status"`
	BookedAt   time.Time     `json:"booked_at"`

	// Populated by the repository via JOIN.
	User     *User     `json:"user,omitempty"`
	Activity *Activity `json:"activity,omitempty"`
}

type BookingStats struct {
	TotalBookings    int `json:"total_bookings"`
	UpcomingBookings int `json:"upcoming_bookings"`
	TodayBookings    int `json:"today_bookings"`
	PastBookings     int `json:"past_bookings"`
	TotalTickets     int `json:"total_tickets"`
}
