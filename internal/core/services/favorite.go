package services

import (
	"context"
	"errors"
	"time"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
)

type FavoriteService struct {
	favorites  ports.FavoriteRepository
	products   ports.ProductRepository
	activities ports.ActivityRepository
}

func NewFavoriteService(favorites ports.FavoriteRepository, products ports.ProductRepository, activities ports.ActivityRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, products: products, activities: activities}
}

// FavoriteIDs groups favorited item IDs by type.
type FavoriteIDs struct {
	Products   []int64 `json:"products"`
	Activities []int64 `json:"activities"`
}

// Add favorites an item. Adding an already-favorited item returns the
// existing favorite instead of failing.
func (s *FavoriteService) Add(ctx context.Context, user *domain.User, itemID int64, itemType domain.ItemType) (*domain.Favorite, error) {
	if !itemType.Valid() {
		return nil, domain.ErrInvalidItemType
	}

	if err := s.checkItemActive(ctx, itemID, itemType); err != nil {
		return nil, err
	}

	if existing, err := s.favorites.Get(ctx, user.ID, itemID, itemType); err == nil {
		return existing, nil
	}

	favorite := &domain.Favorite{
		UserID:    user.ID,
		ItemID:    itemID,
		ItemType:  itemType,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		if errors.Is(err, domain.ErrAlreadyFavorited) {
			return s.favorites.Get(ctx, user.ID, itemID, itemType)
		}
		return nil, err
	}
	return favorite, nil
}

// List returns the caller's favorites with item details. Favorites whose
// item has been deactivated or removed are omitted.
func (s *FavoriteService) List(ctx context.Context, user *domain.User, itemType domain.ItemType) ([]*domain.FavoriteWithItem, error) {
	if itemType != "" && !itemType.Valid() {
		return nil, domain.ErrInvalidItemType
	}

	favorites, err := s.favorites.List(ctx, user.ID, itemType)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FavoriteWithItem, 0, len(favorites))
	for _, fav := range favorites {
		item := &domain.FavoriteWithItem{Favorite: *fav}
		switch fav.ItemType {
		case domain.ItemTypeProduct:
			product, err := s.products.GetByID(ctx, fav.ItemID)
			if err != nil || !product.IsActive {
				continue
			}
			item.Product = product
		case domain.ItemTypeActivity:
			activity, err := s.activities.GetByID(ctx, fav.ItemID)
			if err != nil || !activity.IsActive {
				continue
			}
			item.Activity = activity
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *FavoriteService) IDs(ctx context.Context, user *domain.User, itemType domain.ItemType) (*FavoriteIDs, error) {
	if itemType != "" && !itemType.Valid() {
		return nil, domain.ErrInvalidItemType
	}

	favorites, err := s.favorites.List(ctx, user.ID, itemType)
	if err != nil {
		return nil, err
	}

	ids := &FavoriteIDs{Products: []int64{}, Activities: []int64{}}
	for _, fav := range favorites {
		if fav.ItemType == domain.ItemTypeProduct {
			ids.Products = append(ids.Products, fav.ItemID)
		} else {
			ids.Activities = append(ids.Activities, fav.ItemID)
		}
	}
	return ids, nil
}

// Remove unfavorites an item. Removing an item that is not favorited is not
// an error; the bool reports whether a favorite was actually deleted.
func (s *FavoriteService) Remove(ctx context.Context, user *domain.User, itemID int64, itemType domain.ItemType) (bool, error) {
	if !itemType.Valid() {
		return false, domain.ErrInvalidItemType
	}
	return s.favorites.Delete(ctx, user.ID, itemID, itemType)
}

// Check reports whether an item is favorited. Unknown item types are
// reported as not favorited rather than rejected.
func (s *FavoriteService) Check(ctx context.Context, user *domain.User, itemID int64, itemType domain.ItemType) (bool, error) {
	if !itemType.Valid() {
		return false, nil
	}

	_, err := s.favorites.Get(ctx, user.ID, itemID, itemType)
	if err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *FavoriteService) checkItemActive(ctx context.Context, itemID int64, itemType domain.ItemType) error {
	switch itemType {
	case domain.ItemTypeProduct:
		product, err := s.products.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if !product.IsActive {
			return domain.ErrProductNotFound
		}
	case domain.ItemTypeActivity:
		activity, err := s.activities.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if !activity.IsActive {
			return domain.ErrActivityNotFound
		}
	}
	return nil
}
