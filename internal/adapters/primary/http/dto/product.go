package dto

import (
	"time"

	"farmventure-api/internal/core/domain"
)

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description string  `json:"description" binding:"required,max=500"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,min=1,max=50"`
	ImageURL    string  `json:"image_url" binding:"omitempty,max=500"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Category    *string  `json:"category" binding:"omitempty,min=1,max=50"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,max=500"`
	IsActive    *bool    `json:"is_active"`
}

type ProductResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Category    string        `json:"category"`
	ImageURL    string        `json:"image_url,omitempty"`
	IsActive    bool          `json:"is_active"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
	Owner       *UserResponse `json:"owner,omitempty"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Owner != nil {
		owner := ToUserResponse(p.Owner)
		resp.Owner = &owner
	}
	return resp
}

func ToProductResponses(products []*domain.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return items
}
