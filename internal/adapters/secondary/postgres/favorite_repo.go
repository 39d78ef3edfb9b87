package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmventure-api/internal/core/domain"
	"farmventure-api/internal/core/ports/output"
)

type favoriteRepo struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) ports.FavoriteRepository {
	return &favoriteRepo{pool: pool}
}

func (r *favoriteRepo) Create(ctx context.Context, favorite *domain.Favorite) error {
	query := `
		INSERT INTO favorites (user_id, item_id, item_type, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		favorite.UserID, favorite.ItemID, string(favorite.ItemType), favorite.CreatedAt,
	).Scan(&favorite.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyFavorited
		}
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepo) Get(ctx context.Context, userID, itemID int64, itemType domain.ItemType) (*domain.Favorite, error) {
	query := `
		SELECT id, user_id, item_id, item_type, created_at
		FROM favorites
		WHERE user_id = $1 AND item_id = $2 AND item_type = $3
	`
	f, err := scanFavorite(r.pool.QueryRow(ctx, query, userID, itemID, string(itemType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	return f, nil
}

func (r *favoriteRepo) List(ctx context.Context, userID int64, itemType domain.ItemType) ([]*domain.Favorite, error) {
	query := `
		SELECT id, user_id, item_id, item_type, created_at
		FROM favorites
		WHERE user_id = $1 AND ($2 = '' OR item_type = $2)
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID, string(itemType))
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []*domain.Favorite
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorite rows: %w", err)
	}
	return favorites, nil
}

func (r *favoriteRepo) Delete(ctx context.Context, userID, itemID int64, itemType domain.ItemType) (bool, error) {
	result, err := r.pool.Exec(ctx, `
		DELETE FROM favorites
		WHERE user_id = $1 AND item_id = $2 AND item_type = $3
	`, userID, itemID, string(itemType))
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func scanFavorite(row pgx.Row) (*domain.Favorite, error) {
	f := &domain.Favorite{}
	var itemType string
	if err := row.Scan(&f.ID, &f.UserID, &f.ItemID, &itemType, &f.CreatedAt); err != nil {
		return nil, err
	}
	f.ItemType = domain.ItemType(itemType)
	return f, nil
}
