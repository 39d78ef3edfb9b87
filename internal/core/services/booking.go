package services

import (
	"context"
	"fmt"
	"time"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
)

type BookingService struct {
	bookings   ports.BookingRepository
	activities ports.ActivityRepository
}

func NewBookingService(bookings ports.BookingRepository, activities ports.ActivityRepository) *BookingService {
	return &BookingService{bookings: bookings, activities: activities}
}

// Availability is the dry-run result of a prospective booking.
type Availability struct {
	Available bool             `json:"available"`
	SpotsLeft int              `json:"spots_left"`
	Message   string           `json:"message"`
	Activity  *domain.Activity `json:"activity,omitempty"`
}

// Create books an activity for a customer. The capacity bound is enforced
// again inside the repository transaction; the checks here exist to give
// callers precise errors.
func (s *BookingService) Create(ctx context.Context, user *domain.User, activityID int64, tickets int) (*domain.Booking, error) {
	if user.IsAdmin() {
		return nil, domain.ErrCustomerOnly
	}
	if tickets < 1 {
		return nil, domain.ErrInvalidTickets
	}

	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if activity.IsPast(now) {
		return nil, domain.ErrActivityInPast
	}
	if !activity.IsActive {
		return nil, domain.ErrActivityClosed
	}
	if tickets > activity.AvailableSpots() {
		return nil, domain.ErrNotEnoughSpots
	}

	exists, err := s.bookings.ExistsForUserAndActivity(ctx, user.ID, activityID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyBooked
	}

	booking := &domain.Booking{
		UserID:     user.ID,
		ActivityID: activityID,
		Tickets:    tickets,
		Status:     domain.StatusFor(activity.StartsAt, now),
		BookedAt:   now,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	return s.bookings.GetByID(ctx, booking.ID)
}

// ListMine returns the caller's bookings, newest first, with statuses
// refreshed against the current date.
func (s *BookingService) ListMine(ctx context.Context, user *domain.User, status string) ([]*domain.Booking, error) {
	filter := ports.BookingFilter{UserID: user.ID}
	if status != "" {
		bs := domain.BookingStatus(status)
		if !bs.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = bs
	}

	if err := s.bookings.RefreshStatuses(ctx, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.bookings.List(ctx, filter)
}

func (s *BookingService) ListAll(ctx context.Context, user *domain.User, userID, activityID int64, status string) ([]*domain.Booking, error) {
	if !user.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	filter := ports.BookingFilter{UserID: userID, ActivityID: activityID}
	if status != "" {
		bs := domain.BookingStatus(status)
		if !bs.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = bs
	}

	if err := s.bookings.RefreshStatuses(ctx, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.bookings.List(ctx, filter)
}

func (s *BookingService) Get(ctx context.Context, user *domain.User, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != user.ID && !user.IsAdmin() {
		return nil, domain.ErrNotBookingOwner
	}

	// Keep the stored status honest on single reads too.
	if booking.Activity != nil {
		current := domain.StatusFor(booking.Activity.StartsAt, time.Now().UTC())
		if current != booking.Status {
			if err := s.bookings.RefreshStatuses(ctx, time.Now().UTC()); err != nil {
				return nil, err
			}
			booking.Status = current
		}
	}
	return booking, nil
}

// UpdateTickets changes the ticket count of a booking. The seat delta is
// applied to the activity inside the repository transaction.
func (s *BookingService) UpdateTickets(ctx context.Context, user *domain.User, id int64, tickets int) (*domain.Booking, error) {
	if tickets < 1 {
		return nil, domain.ErrInvalidTickets
	}

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != user.ID && !user.IsAdmin() {
		return nil, domain.ErrNotBookingOwner
	}

	activity, err := s.activities.GetByID(ctx, booking.ActivityID)
	if err != nil {
		return nil, err
	}
	if activity.IsPast(time.Now().UTC()) {
		return nil, domain.ErrActivityInPast
	}

	if tickets != booking.Tickets {
		if err := s.bookings.UpdateTickets(ctx, id, tickets); err != nil {
			return nil, err
		}
	}
	return s.bookings.GetByID(ctx, id)
}

// Cancel removes a booking and releases its seats.
func (s *BookingService) Cancel(ctx context.Context, user *domain.User, id int64) error {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.UserID != user.ID && !user.IsAdmin() {
		return domain.ErrNotBookingOwner
	}

	activity, err := s.activities.GetByID(ctx, booking.ActivityID)
	if err == nil && activity.IsPast(time.Now().UTC()) {
		return domain.ErrActivityInPast
	}

	return s.bookings.Delete(ctx, id)
}

func (s *BookingService) Stats(ctx context.Context, user *domain.User) (*domain.BookingStats, error) {
	if !user.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	if err := s.bookings.RefreshStatuses(ctx, time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.bookings.Stats(ctx)
}

// CheckAvailability reports whether a booking of the given size would
// succeed, without creating one.
func (s *BookingService) CheckAvailability(ctx context.Context, user *domain.User, activityID int64, tickets int) (*Availability, error) {
	if tickets < 1 {
		tickets = 1
	}

	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if activity.IsPast(time.Now().UTC()) {
		return &Availability{Available: false, Message: "cannot book past activities"}, nil
	}

	spots := activity.AvailableSpots()
	if spots <= 0 {
		return &Availability{Available: false, Message: "this activity is sold out"}, nil
	}
	if tickets > spots {
		return &Availability{Available: false, SpotsLeft: spots, Message: fmt.Sprintf("only %d spot(s) available", spots)}, nil
	}

	if !user.IsAdmin() {
		exists, err := s.bookings.ExistsForUserAndActivity(ctx, user.ID, activityID)
		if err != nil {
			return nil, err
		}
		if exists {
			return &Availability{Available: false, SpotsLeft: spots, Message: "you have already booked this activity"}, nil
		}
	}

	return &Availability{
		Available: true,
		SpotsLeft: spots,
		Message:   fmt.Sprintf("%d spot(s) available", spots),
		Activity:  activity,
	}, nil
}
