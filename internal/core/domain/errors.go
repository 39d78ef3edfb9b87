package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrProductNotFound  = errors.New("product not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrFavoriteNotFound = errors.New("favorite not found")

	ErrAdminOnly       = errors.New("admin access required")
	ErrCustomerOnly    = errors.New("admins cannot book activities")
	ErrNotOwner        = errors.New("not authorized to modify this resource")
	ErrNotBookingOwner = errors.New("you can only access your own bookings")

	ErrActivityInPast  = errors.New("cannot book past activities")
	ErrActivityClosed  = errors.New("activity is not open for booking")
	ErrNotEnoughSpots  = errors.New("not enough spots available")
	ErrAlreadyBooked   = errors.New("you have already booked this activity")
	ErrInvalidTickets  = errors.New("number of tickets must be at least 1")
	ErrInvalidStatus   = errors.New("status filter must be past, today or upcoming")
	ErrInvalidItemType  = errors.New("item type must be product or activity")
	ErrAlreadyFavorited = errors.New("item is already in favorites")
)
