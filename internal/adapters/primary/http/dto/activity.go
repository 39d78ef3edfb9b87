package dto

import (
	"time"

	"farmventure-api/internal/core/domain"
)

type CreateActivityRequest struct {
	Title           string    `json:"title" binding:"required,min=1,max=200"`
	Description     string    `json:"description" binding:"required,max=255"`
	StartsAt        time.Time `json:"starts_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"omitempty,gt=0"`
	Price           float64   `json:"price" binding:"gte=0"`
	MaxCapacity     int       `json:"max_capacity" binding:"required,gt=0"`
	Category        string    `json:"category" binding:"required,min=1,max=50"`
	Location        string    `json:"location" binding:"required,min=1,max=200"`
	ImageURL        string    `json:"image_url" binding:"omitempty,max=500"`
}

type UpdateActivityRequest struct {
	Title           *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description     *string    `json:"description" binding:"omitempty,max=255"`
	StartsAt        *time.Time `json:"starts_at"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,gt=0"`
	Price           *float64   `json:"price" binding:"omitempty,gte=0"`
	MaxCapacity     *int       `json:"max_capacity" binding:"omitempty,gt=0"`
	Category        *string    `json:"category" binding:"omitempty,min=1,max=50"`
	Location        *string    `json:"location" binding:"omitempty,min=1,max=200"`
	ImageURL        *string    `json:"image_url" binding:"omitempty,max=500"`
	IsActive        *bool      `json:"is_active"`
}

type ActivityResponse struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	StartsAt        string        `json:"starts_at"`
	DurationMinutes int           `json:"duration_minutes"`
	Price           float64       `json:"price"`
	MaxCapacity     int           `json:"max_capacity"`
	CurrentCapacity int           `json:"current_capacity"`
	AvailableSpots  int           `json:"available_spots"`
	Category        string        `json:"category"`
	Location        string        `json:"location"`
	ImageURL        string        `json:"image_url,omitempty"`
	IsActive        bool          `json:"is_active"`
	CreatedAt       string        `json:"created_at"`
	Owner           *UserResponse `json:"owner,omitempty"`
}

func ToActivityResponse(a *domain.Activity) ActivityResponse {
	resp := ActivityResponse{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		StartsAt:        a.StartsAt.Format(time.RFC3339),
		DurationMinutes: a.DurationMinutes,
		Price:           a.Price,
		MaxCapacity:     a.MaxCapacity,
		CurrentCapacity: a.CurrentCapacity,
		AvailableSpots:  a.AvailableSpots(),
		Category:        a.Category,
		Location:        a.Location,
		ImageURL:        a.ImageURL,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
	}
	if a.Owner != nil {
		owner := ToUserResponse(a.Owner)
		resp.Owner = &owner
	}
	return resp
}

func ToActivityResponses(activities []*domain.Activity) []ActivityResponse {
	items := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		items = append(items, ToActivityResponse(a))
	}
	return items
}
