package domain

import "time"

type Activity struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartsAt        time.Time `json:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	MaxCapacity     int       `json:"max_capacity"`
	CurrentCapacity int       `json:"current_capacity"`
	Category        string    `json:"category"`
	Location        string    `json:"location"`
	ImageURL        string    `json:"image_url,omitempty"`
	IsActive        bool      `json:"is_active"`
	UserID          int64     `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`

	// Populated by the repository via JOIN.
	Owner *User `json:"owner,omitempty"`
}

func (a *Activity) AvailableSpots() int {
	return a.MaxCapacity - a.CurrentCapacity
}

func (a *Activity) IsPast(now time.Time) bool {
	return a.StartsAt.Before(now)
}
