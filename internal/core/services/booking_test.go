package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/testutil"
)

func bookingFixtures() (*testutil.MockBookingRepo, *testutil.MockActivityRepo, *BookingService) {
	bookings := new(testutil.MockBookingRepo)
	activities := new(testutil.MockActivityRepo)
	return bookings, activities, NewBookingService(bookings, activities)
}

func upcomingActivity() *domain.Activity {
	return &domain.Activity{
		ID:              7,
		Title:           "goat yoga",
		StartsAt:        time.Now().UTC().Add(48 * time.Hour),
		MaxCapacity:     10,
		CurrentCapacity: 4,
		IsActive:        true,
	}
}

func TestBookingService_Create(t *testing.T) {
	bookings, activities, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}
	activity := upcomingActivity()

	activities.On("GetByID", mock.Anything, int64(7)).Return(activity, nil)
	bookings.On("ExistsForUserAndActivity", mock.Anything, int64(3), int64(7)).Return(false, nil)
	bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Booking).ID = 42
		}).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{
		ID: 42, UserID: 3, ActivityID: 7, Tickets: 2,
		Status: domain.BookingStatusUpcoming, Activity: activity,
	}, nil)

	booking, err := svc.Create(context.Background(), customer, 7, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, domain.BookingStatusUpcoming, booking.Status)
	bookings.AssertExpectations(t)
}

func TestBookingService_Create_AdminRejected(t *testing.T) {
	_, _, svc := bookingFixtures()
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	_, err := svc.Create(context.Background(), admin, 7, 1)
	assert.ErrorIs(t, err, domain.ErrCustomerOnly)
}

func TestBookingService_Create_InvalidTickets(t *testing.T) {
	_, _, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	_, err := svc.Create(context.Background(), customer, 7, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidTickets)
}

func TestBookingService_Create_PastActivity(t *testing.T) {
	_, activities, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	past := upcomingActivity()
	past.StartsAt = time.Now().UTC().Add(-time.Hour)
	activities.On("GetByID", mock.Anything, int64(7)).Return(past, nil)

	_, err := svc.Create(context.Background(), customer, 7, 1)
	assert.ErrorIs(t, err, domain.ErrActivityInPast)
}

func TestBookingService_Create_ClosedActivity(t *testing.T) {
	_, activities, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	closed := upcomingActivity()
	closed.IsActive = false
	activities.On("GetByID", mock.Anything, int64(7)).Return(closed, nil)

	_, err := svc.Create(context.Background(), customer, 7, 1)
	assert.ErrorIs(t, err, domain.ErrActivityClosed)
}

func TestBookingService_Create_NotEnoughSpots(t *testing.T) {
	_, activities, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	activity := upcomingActivity()
	activity.CurrentCapacity = 9
	activities.On("GetByID", mock.Anything, int64(7)).Return(activity, nil)

	_, err := svc.Create(context.Background(), customer, 7, 2)
	assert.ErrorIs(t, err, domain.ErrNotEnoughSpots)
}

func TestBookingService_Create_AlreadyBooked(t *testing.T) {
	bookings, activities, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	activities.On("GetByID", mock.Anything, int64(7)).Return(upcomingActivity(), nil)
	bookings.On("ExistsForUserAndActivity", mock.Anything, int64(3), int64(7)).Return(true, nil)

	_, err := svc.Create(context.Background(), customer, 7, 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_ListMine_InvalidStatus(t *testing.T) {
	_, _, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	_, err := svc.ListMine(context.Background(), customer, "cancelled")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestBookingService_ListMine_RefreshesStatuses(t *testing.T) {
	bookings, _, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	bookings.On("RefreshStatuses", mock.Anything, mock.AnythingOfType("time.Time")).Return(nil)
	bookings.On("List", mock.Anything, mock.AnythingOfType("ports.BookingFilter")).
		Return([]*domain.Booking{{ID: 1, UserID: 3}}, nil)

	result, err := svc.ListMine(context.Background(), customer, "")
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	bookings.AssertExpectations(t)
}

func TestBookingService_ListAll_CustomerRejected(t *testing.T) {
	_, _, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	_, err := svc.ListAll(context.Background(), customer, 0, 0, "")
	assert.ErrorIs(t, err, domain.ErrAdminOnly)
}

func TestBookingService_Get_NotOwner(t *testing.T) {
	bookings, _, svc := bookingFixtures()
	stranger := &domain.User{ID: 99, Role: domain.RoleCustomer}

	bookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{ID: 42, UserID: 3}, nil)

	_, err := svc.Get(context.Background(), stranger, 42)
	assert.ErrorIs(t, err, domain.ErrNotBookingOwner)
}

func TestBookingService_Get_AdminCanReadAny(t *testing.T) {
	bookings, _, svc := bookingFixtures()
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	bookings.On("GetByID", mock.Anything, int64(42)).Return(&domain.Booking{ID: 42, UserID: 3}, nil)

	booking, err := svc.Get(context.Background(), admin, 42)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
}

func TestBookingService_UpdateTickets(t *testing.T) {
	bookings, activities, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	bookings.On("GetByID", mock.Anything, int64(42)).
		Return(&domain.Booking{ID: 42, UserID: 3, ActivityID: 7, Tickets: 1}, nil)
	activities.On("GetByID", mock.Anything, int64(7)).Return(upcomingActivity(), nil)
	bookings.On("UpdateTickets", mock.Anything, int64(42), 3).Return(nil)

	_, err := svc.UpdateTickets(context.Background(), customer, 42, 3)
	assert.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestBookingService_UpdateTickets_UnchangedSkipsWrite(t *testing.T) {
	bookings, activities, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	bookings.On("GetByID", mock.Anything, int64(42)).
		Return(&domain.Booking{ID: 42, UserID: 3, ActivityID: 7, Tickets: 2}, nil)
	activities.On("GetByID", mock.Anything, int64(7)).Return(upcomingActivity(), nil)

	_, err := svc.UpdateTickets(context.Background(), customer, 42, 2)
	assert.NoError(t, err)
	bookings.AssertNotCalled(t, "UpdateTickets", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Cancel_PastActivity(t *testing.T) {
	bookings, activities, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	past := upcomingActivity()
	past.StartsAt = time.Now().UTC().Add(-time.Hour)
	bookings.On("GetByID", mock.Anything, int64(42)).
		Return(&domain.Booking{ID: 42, UserID: 3, ActivityID: 7}, nil)
	activities.On("GetByID", mock.Anything, int64(7)).Return(past, nil)

	err := svc.Cancel(context.Background(), customer, 42)
	assert.ErrorIs(t, err, domain.ErrActivityInPast)
	bookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBookingService_Stats_CustomerRejected(t *testing.T) {
	_, _, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	_, err := svc.Stats(context.Background(), customer)
	assert.ErrorIs(t, err, domain.ErrAdminOnly)
}

func TestBookingService_CheckAvailability_SoldOut(t *testing.T) {
	_, activities, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	full := upcomingActivity()
	full.CurrentCapacity = full.MaxCapacity
	activities.On("GetByID", mock.Anything, int64(7)).Return(full, nil)

	availability, err := svc.CheckAvailability(context.Background(), customer, 7, 1)
	assert.NoError(t, err)
	assert.False(t, availability.Available)
	assert.Equal(t, "this activity is sold out", availability.Message)
}

func TestBookingService_CheckAvailability_AlreadyBooked(t *testing.T) {
	bookings, activities, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	activities.On("GetByID", mock.Anything, int64(7)).Return(upcomingActivity(), nil)
	bookings.On("ExistsForUserAndActivity", mock.Anything, int64(3), int64(7)).Return(true, nil)

	availability, err := svc.CheckAvailability(context.Background(), customer, 7, 1)
	assert.NoError(t, err)
	assert.False(t, availability.Available)
	assert.Equal(t, "you have already booked this activity", availability.Message)
}

func TestBookingService_CheckAvailability_OK(t *testing.T) {
	bookings, activities, svc := bookingFixtures()
	customer := &domain.User{ID: 3, Role: domain.RoleCustomer}

	activities.On("GetByID", mock.Anything, int64(7)).Return(upcomingActivity(), nil)
	bookings.On("ExistsForUserAndActivity", mock.Anything, int64(3), int64(7)).Return(false, nil)

	availability, err := svc.CheckAvailability(context.Background(), customer, 7, 2)
	assert.NoError(t, err)
	assert.True(t, availability.Available)
	assert.Equal(t, 6, availability.SpotsLeft)
	assert.NotNil(t, availability.Activity)
}
