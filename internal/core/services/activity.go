package services

import (
	"context"
	"time"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
)

type ActivityService struct {
	repo ports.ActivityRepository
}

func NewActivityService(repo ports.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (s *ActivityService) Create(ctx context.Context, user *domain.User, activity *domain.Activity) (*domain.Activity, error) {
	if !user.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	if activity.DurationMinutes <= 0 {
		activity.DurationMinutes = 60
	}
	activity.UserID = user.ID
	activity.CurrentCapacity = 0
	activity.IsActive = true
	activity.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, activity.ID)
}

func (s *ActivityService) Get(ctx context.Context, id int64) (*domain.Activity, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns active activities; with upcomingOnly set, activities whose
// start time has passed are excluded.
func (s *ActivityService) List(ctx context.Context, upcomingOnly bool, search string) ([]*domain.Activity, error) {
	filter := ports.ActivityFilter{
		UpcomingOnly: upcomingOnly,
		Search:       search,
		Now:          time.Now().UTC(),
	}
	return s.repo.List(ctx, filter)
}

func (s *ActivityService) Update(ctx context.Context, user *domain.User, id int64, updates map[string]interface{}) (*domain.Activity, error) {
	if !user.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if v, ok := updates["title"]; ok && v != nil {
		activity.Title = v.(string)
	}
	if v, ok := updates["description"]; ok && v != nil {
		activity.Description = v.(string)
	}
	if v, ok := updates["starts_at"]; ok && v != nil {
		activity.StartsAt = v.(time.Time)
	}
	if v, ok := updates["duration_minutes"]; ok && v != nil {
		activity.DurationMinutes = v.(int)
	}
	if v, ok := updates["price"]; ok && v != nil {
		activity.Price = v.(float64)
	}
	if v, ok := updates["max_capacity"]; ok && v != nil {
		activity.MaxCapacity = v.(int)
	}
	if v, ok := updates["category"]; ok && v != nil {
		activity.Category = v.(string)
	}
	if v, ok := updates["location"]; ok && v != nil {
		activity.Location = v.(string)
	}
	if v, ok := updates["image_url"]; ok && v != nil {
		activity.ImageURL = v.(string)
	}
	if v, ok := updates["is_active"]; ok && v != nil {
		activity.IsActive = v.(bool)
	}

	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete soft-deletes an activity, closing it for bookings.
func (s *ActivityService) Delete(ctx context.Context, user *domain.User, id int64) error {
	if !user.IsAdmin() {
		return domain.ErrAdminOnly
	}

	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	activity.IsActive = false
	return s.repo.Update(ctx, activity)
}

// Toggle flips the active flag and returns the new state.
func (s *ActivityService) Toggle(ctx context.Context, user *domain.User, id int64) (*domain.Activity, error) {
	if !user.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	activity.IsActive = !activity.IsActive
	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}
