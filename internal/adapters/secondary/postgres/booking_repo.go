package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
)

const bookingColumns = `
	b.id, b.user_id, b.activity_id, b.tickets, b.status, b.booked_at,
	bu.id, bu.username, bu.email, bu.role, bu.created_at,
	a.id, a.title, a.description, a.starts_at, a.duration_minutes, a.price,
	a.max_capacity, a.current_capacity, a.category, a.location,
	COALESCE(a.image_url, ''), a.is_active, a.user_id, a.created_at,
	au.id, au.username, au.email, au.role, au.created_at
`

const bookingJoins = `
	JOIN users bu ON bu.id = b.user_id
	JOIN activities a ON a.id = b.activity_id
	JOIN users au ON au.id = a.user_id
`

// statusCase derives the stored booking status from the activity date,
// by calendar day in UTC. $%d is the "now" placeholder.
const statusCase = `CASE
	WHEN (a.starts_at AT TIME ZONE 'UTC')::date < ($%d AT TIME ZONE 'UTC')::date THEN 'past'
	WHEN (a.starts_at AT TIME ZONE 'UTC')::date = ($%d AT TIME ZONE 'UTC')::date THEN 'today'
	ELSE 'upcoming'
END`

type bookingRepo struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) ports.BookingRepository {
	return &bookingRepo{pool: pool}
}

func (r *bookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Claim the seats first; the guard keeps concurrent bookings from
	// pushing current_capacity past max_capacity.
	result, err := tx.Exec(ctx, `
		UPDATE activities
		SET current_capacity = current_capacity + $2
		WHERE id = $1 AND current_capacity + $2 <= max_capacity
	`, booking.ActivityID, booking.Tickets)
	if err != nil {
		return fmt.Errorf("claim activity seats: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotEnoughSpots
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (user_id, activity_id, tickets, status, booked_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, booking.UserID, booking.ActivityID, booking.Tickets, string(booking.Status), booking.BookedAt,
	).Scan(&booking.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx: %w", err)
	}
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		%s
		WHERE b.id = $1
	`, bookingColumns, bookingJoins)

	b, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}
	return b, nil
}

func (r *bookingRepo) List(ctx context.Context, filter ports.BookingFilter) ([]*domain.Booking, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.UserID != 0 {
		conditions = append(conditions, fmt.Sprintf("b.user_id = $%d", argPos))
		args = append(args, filter.UserID)
		argPos++
	}
	if filter.ActivityID != 0 {
		conditions = append(conditions, fmt.Sprintf("b.activity_id = $%d", argPos))
		args = append(args, filter.ActivityID)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", argPos))
		args = append(args, string(filter.Status))
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings b
		%s
		WHERE %s
		ORDER BY b.booked_at DESC
	`, bookingColumns, bookingJoins, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepo) UpdateTickets(ctx context.Context, id int64, tickets int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var activityID int64
	var current int
	err = tx.QueryRow(ctx, `
		SELECT activity_id, tickets FROM bookings WHERE id = $1 FOR UPDATE
	`, id).Scan(&activityID, &current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("lock booking: %w", err)
	}

	delta := tickets - current
	result, err := tx.Exec(ctx, `
		UPDATE activities
		SET current_capacity = current_capacity + $2
		WHERE id = $1
			AND current_capacity + $2 <= max_capacity
			AND current_capacity + $2 >= 0
	`, activityID, delta)
	if err != nil {
		return fmt.Errorf("adjust activity seats: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotEnoughSpots
	}

	if _, err := tx.Exec(ctx, `UPDATE bookings SET tickets = $2 WHERE id = $1`, id, tickets); err != nil {
		return fmt.Errorf("update booking tickets: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx: %w", err)
	}
	return nil
}

func (r *bookingRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var activityID int64
	var tickets int
	err = tx.QueryRow(ctx, `
		SELECT activity_id, tickets FROM bookings WHERE id = $1 FOR UPDATE
	`, id).Scan(&activityID, &tickets)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("lock booking: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE activities
		SET current_capacity = GREATEST(current_capacity - $2, 0)
		WHERE id = $1
	`, activityID, tickets); err != nil {
		return fmt.Errorf("release activity seats: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx: %w", err)
	}
	return nil
}

func (r *bookingRepo) RefreshStatuses(ctx context.Context, now time.Time) error {
	derived := fmt.Sprintf(statusCase, 1, 1)
	query := fmt.Sprintf(`
		UPDATE bookings b
		SET status = %s
		FROM activities a
		WHERE a.id = b.activity_id AND b.status <> %s
	`, derived, derived)

	if _, err := r.pool.Exec(ctx, query, now); err != nil {
		return fmt.Errorf("refresh booking statuses: %w", err)
	}
	return nil
}

func (r *bookingRepo) Stats(ctx context.Context) (*domain.BookingStats, error) {
	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'upcoming'),
			   COUNT(*) FILTER (WHERE status = 'today'),
			   COUNT(*) FILTER (WHERE status = 'past'),
			   COALESCE(SUM(tickets), 0)
		FROM bookings
	`
	stats := &domain.BookingStats{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalBookings, &stats.UpcomingBookings,
		&stats.TodayBookings, &stats.PastBookings, &stats.TotalTickets,
	)
	if err != nil {
		return nil, fmt.Errorf("booking stats: %w", err)
	}
	return stats, nil
}

func (r *bookingRepo) ExistsForUserAndActivity(ctx context.Context, userID, activityID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM bookings WHERE user_id = $1 AND activity_id = $2)
	`, userID, activityID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check booking exists: %w", err)
	}
	return exists, nil
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	b := &domain.Booking{
		User:     &domain.User{},
		Activity: &domain.Activity{Owner: &domain.User{}},
	}
	var status, userRole, ownerRole string

	err := row.Scan(
		&b.ID, &b.UserID, &b.ActivityID, &b.Tickets, &status, &b.BookedAt,
		&b.User.ID, &b.User.Username, &b.User.Email, &userRole, &b.User.CreatedAt,
		&b.Activity.ID, &b.Activity.Title, &b.Activity.Description, &b.Activity.StartsAt,
		&b.Activity.DurationMinutes, &b.Activity.Price,
		&b.Activity.MaxCapacity, &b.Activity.CurrentCapacity,
		&b.Activity.Category, &b.Activity.Location,
		&b.Activity.ImageURL, &b.Activity.IsActive, &b.Activity.UserID, &b.Activity.CreatedAt,
		&b.Activity.Owner.ID, &b.Activity.Owner.Username, &b.Activity.Owner.Email,
		&ownerRole, &b.Activity.Owner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Status = domain.BookingStatus(status)
	b.User.Role = domain.UserRole(userRole)
	b.Activity.Owner.Role = domain.UserRole(ownerRole)
	return b, nil
}
