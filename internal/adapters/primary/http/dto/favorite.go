package dto

import (
	"time"

	"farmventure-api/internal/core/domain"
)

type CreateFavoriteRequest struct {
	ItemID   int64  `json:"item_id" binding:"required,gt=0"`
	ItemType string `json:"item_type" binding:"required,oneof=product activity"`
}

type FavoriteResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	ItemID    int64  `json:"item_id"`
	ItemType  string `json:"item_type"`
	CreatedAt string `json:"created_at"`
}

type FavoriteDetailResponse struct {
	FavoriteResponse
	Product  *ProductResponse  `json:"product,omitempty"`
	Activity *ActivityResponse `json:"activity,omitempty"`
}

func ToFavoriteResponse(f *domain.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:        f.ID,
		UserID:    f.UserID,
		ItemID:    f.ItemID,
		ItemType:  string(f.ItemType),
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}

func ToFavoriteDetailResponse(f *domain.FavoriteWithItem) FavoriteDetailResponse {
	resp := FavoriteDetailResponse{FavoriteResponse: ToFavoriteResponse(&f.Favorite)}
	if f.Product != nil {
		product := ToProductResponse(f.Product)
		resp.Product = &product
	}
	if f.Activity != nil {
		activity := ToActivityResponse(f.Activity)
		resp.Activity = &activity
	}
	return resp
}
