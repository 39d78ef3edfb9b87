package dto

import (
	"time"

	"farmventure-api/internal/core/domain"
)

type CreateBookingRequest struct {
	ActivityID int64 `json:"activity_id" binding:"required,gt=0"`
	Tickets    int   `json:"tickets" binding:"omitempty,gte=1"`
}

type UpdateBookingRequest struct {
	Tickets *int `json:"tickets" binding:"omitempty,gte=1"`
}

type BookingResponse struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"user_id"`
	ActivityID int64             `json:"activity_id"`
	Tickets    int               `json:"tickets"`
	Status     string            `json:"status"`
	BookedAt   string            `json:"booked_at"`
	User       *UserResponse     `json:"user,omitempty"`
	Activity   *ActivityResponse `json:"activity,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		ActivityID: b.ActivityID,
		Tickets:    b.Tickets,
		Status:     string(b.Status),
		BookedAt:   b.BookedAt.Format(time.RFC3339),
	}
	if b.User != nil {
		user := ToUserResponse(b.User)
		resp.User = &user
	}
	if b.Activity != nil {
		activity := ToActivityResponse(b.Activity)
		resp.Activity = &activity
	}
	return resp
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, ToBookingResponse(b))
	}
	return items
}
