package ports

import (
	"context"
	"time"

	"farmventure-api/internal/core/domain"
)

type ProductFilter struct {
	Category        string
	MinPrice        *float64
	MaxPrice        *float64
	Search          string
	UserID          int64
	IncludeInactive bool
	Limit           int
	Offset          int
}

type ActivityFilter struct {
	UpcomingOnly    bool
	Search          string
	IncludeInactive bool
	Now             time.Time
}

type BookingFilter struct {
	UserID     int64
	ActivityID int64
	Status     domain.BookingStatus
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	List(ctx context.Context, filter ActivityFilter) ([]*domain.Activity, error)
}

type BookingRepository interface {
	// Create inserts the booking and claims its seats on the activity in a
	// single transaction; returns domain.ErrNotEnoughSpots when the activity
	// cannot hold the requested tickets and domain.ErrAlreadyBooked on a
	// duplicate (user, activity) pair.
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]*domain.Booking, error)
	// UpdateTickets changes the ticket count and adjusts the activity
	// capacity by the delta in a single transaction.
	UpdateTickets(ctx context.Context, id int64, tickets int) error
	// Delete removes the booking and releases its seats.
	Delete(ctx context.Context, id int64) error
	// RefreshStatuses recomputes the stored status of every booking from its
	// activity date relative to now.
	RefreshStatuses(ctx context.Context, now time.Time) error
	Stats(ctx context.Context) (*domain.BookingStats, error)
	ExistsForUserAndActivity(ctx context.Context, userID, activityID int64) (bool, error)
}

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	Get(ctx context.Context, userID, itemID int64, itemType domain.ItemType) (*domain.Favorite, error)
	List(ctx context.Context, userID int64, itemType domain.ItemType) ([]*domain.Favorite, error)
	Delete(ctx context.Context, userID, itemID int64, itemType domain.ItemType) (bool, error)
}
