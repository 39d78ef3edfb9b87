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

const productColumns = `
	p.id, p.name, p.description, p.price, p.category,
	COALESCE(p.image_url, ''), p.is_active, p.user_id, p.created_at, p.updated_at,
	u.id, u.username, u.email, u.role, u.created_at
`

type productRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) ports.ProductRepository {
	return &productRepo{pool: pool}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products
			(name, description, price, category, image_url, is_active, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Category,
		product.ImageURL, product.IsActive, product.UserID,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`, productColumns)

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name=$1, description=$2, price=$3, category=$4,
			image_url=NULLIF($5, ''), is_active=$6, updated_at=$7
		WHERE id=$8
	`
	result, err := r.pool.Exec(ctx, query,
		product.Name, product.Description, product.Price, product.Category,
		product.ImageURL, product.IsActive, product.UpdatedAt, product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if !filter.IncludeInactive {
		conditions = append(conditions, "p.is_active = TRUE")
	}
	if filter.UserID != 0 {
		conditions = append(conditions, fmt.Sprintf("p.user_id = $%d", argPos))
		args = append(args, filter.UserID)
		argPos++
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("p.category = $%d", argPos))
		args = append(args, filter.Category)
		argPos++
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("p.price >= $%d", argPos))
		args = append(args, *filter.MinPrice)
		argPos++
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("p.price <= $%d", argPos))
		args = append(args, *filter.MaxPrice)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN users u ON u.id = p.user_id
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, productColumns, whereClause, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return products, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	p := &domain.Product{Owner: &domain.User{}}
	var ownerRole string
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.ImageURL, &p.IsActive, &p.UserID, &p.CreatedAt, &p.UpdatedAt,
		&p.Owner.ID, &p.Owner.Username, &p.Owner.Email, &ownerRole, &p.Owner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Owner.Role = domain.UserRole(ownerRole)
	return p, nil
}
