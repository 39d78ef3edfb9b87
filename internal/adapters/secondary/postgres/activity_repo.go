package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
)

const activityColumns = `
	a.id, a.title, a.description, a.starts_at, a.duration_minutes, a.price,
	a.max_capacity, a.current_capacity, a.category, a.location,
	COALESCE(a.image_url, ''), a.is_active, a.user_id, a.created_at,
	u.id, u.username, u.email, u.role, u.created_at
`

type activityRepo struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) ports.ActivityRepository {
	return &activityRepo{pool: pool}
}

func (r *activityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activities
			(title, description, starts_at, duration_minutes, price,
			 max_capacity, current_capacity, category, location, image_url,
			 is_active, user_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NULLIF($10,''),$11,$12,$13)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		activity.Title, activity.Description, activity.StartsAt,
		activity.DurationMinutes, activity.Price,
		activity.MaxCapacity, activity.CurrentCapacity,
		activity.Category, activity.Location, activity.ImageURL,
		activity.IsActive, activity.UserID, activity.CreatedAt,
	).Scan(&activity.ID)
	if err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

func (r *activityRepo) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM activities a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`, activityColumns)

	a, err := scanActivity(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("get activity by id: %w", err)
	}
	return a, nil
}

func (r *activityRepo) Update(ctx context.Context, activity *domain.Activity) error {
	query := `
		UPDATE activities
		SET title=$1, description=$2, starts_at=$3, duration_minutes=$4,
			price=$5, max_capacity=$6, category=$7, location=$8,
			image_url=NULLIF($9,''), is_active=$10
		WHERE id=$11
	`
	result, err := r.pool.Exec(ctx, query,
		activity.Title, activity.Description, activity.StartsAt,
		activity.DurationMinutes, activity.Price, activity.MaxCapacity,
		activity.Category, activity.Location, activity.ImageURL,
		activity.IsActive, activity.ID,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *activityRepo) List(ctx context.Context, filter ports.ActivityFilter) ([]*domain.Activity, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if !filter.IncludeInactive {
		conditions = append(conditions, "a.is_active = TRUE")
	}
	if filter.UpcomingOnly {
		conditions = append(conditions, fmt.Sprintf("a.starts_at >= $%d", argPos))
		args = append(args, filter.Now)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(a.title ILIKE $%d OR a.description ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM activities a
		JOIN users u ON u.id = a.user_id
		WHERE %s
		ORDER BY a.starts_at ASC
	`, activityColumns, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}
	return activities, nil
}

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	a := &domain.Activity{Owner: &domain.User{}}
	var ownerRole string
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.StartsAt, &a.DurationMinutes, &a.Price,
		&a.MaxCapacity, &a.CurrentCapacity, &a.Category, &a.Location,
		&a.ImageURL, &a.IsActive, &a.UserID, &a.CreatedAt,
		&a.Owner.ID, &a.Owner.Username, &a.Owner.Email, &ownerRole, &a.Owner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Owner.Role = domain.UserRole(ownerRole)
	return a, nil
}
