package services

import (
	"context"
	"time"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
)

type ProductService struct {
	repo ports.ProductRepository
}

func NewProductService(repo ports.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, user *domain.User, product *domain.Product) (*domain.Product, error) {
	now := time.Now().UTC()
	product.UserID = user.ID
	product.IsActive = true
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, product.ID)
}

// Get returns a single active product. Inactive products are hidden from
// the public surface and reported as not found.
func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	filter.IncludeInactive = false
	clampPage(&filter.Limit, &filter.Offset)
	return s.repo.List(ctx, filter)
}

func (s *ProductService) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.Product, error) {
	filter := ports.ProductFilter{UserID: userID, Limit: limit, Offset: offset}
	clampPage(&filter.Limit, &filter.Offset)
	return s.repo.List(ctx, filter)
}

func (s *ProductService) Update(ctx context.Context, user *domain.User, id int64, updates map[string]interface{}) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.UserID != user.ID && !user.IsAdmin() {
		return nil, domain.ErrNotOwner
	}

	if v, ok := updates["name"]; ok && v != nil {
		product.Name = v.(string)
	}
	if v, ok := updates["description"]; ok && v != nil {
		product.Description = v.(string)
	}
	if v, ok := updates["price"]; ok && v != nil {
		product.Price = v.(float64)
	}
	if v, ok := updates["category"]; ok && v != nil {
		product.Category = v.(string)
	}
	if v, ok := updates["image_url"]; ok && v != nil {
		product.ImageURL = v.(string)
	}
	if v, ok := updates["is_active"]; ok && v != nil {
		product.IsActive = v.(bool)
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete soft-deletes a product by marking it inactive.
func (s *ProductService) Delete(ctx context.Context, user *domain.User, id int64) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product.UserID != user.ID && !user.IsAdmin() {
		return domain.ErrNotOwner
	}

	product.IsActive = false
	product.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, product)
}

func (s *ProductService) AdminList(ctx context.Context, user *domain.User, showInactive bool, limit, offset int) ([]*domain.Product, error) {
	if !user.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}
	filter := ports.ProductFilter{IncludeInactive: showInactive, Limit: limit, Offset: offset}
	clampPage(&filter.Limit, &filter.Offset)
	return s.repo.List(ctx, filter)
}

func (s *ProductService) Restore(ctx context.Context, user *domain.User, id int64) (*domain.Product, error) {
	if !user.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.IsActive = true
	product.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func clampPage(limit, offset *int) {
	if *limit <= 0 {
		*limit = 20
	}
	if *limit > 100 {
		*limit = 100
	}
	if *offset < 0 {
		*offset = 0
	}
}
