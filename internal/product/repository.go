package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pcstore-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, category string) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]Product, error)
	ExistsByDescription(ctx context.Context, description, category, excludeID string) (bool, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, description, price, category, image, specs, version, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Description, &p.Price, &p.Category, &p.Image,
		&p.Specs, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if p.Specs == nil {
		p.Specs = Specs{}
	}
	return p, err
}

func (r *repository) query(ctx context.Context, query string, args ...interface{}) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) List(ctx context.Context, category string) ([]Product, error) {
	if category == "" {
		return r.query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	}
	return r.query(ctx,
		`SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY created_at DESC`,
		category,
	)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByIDs resolves many references in one round trip. Unknown ids are skipped.
func (r *repository) GetByIDs(ctx context.Context, ids []string) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	return r.query(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ANY($1)`,
		pq.Array(ids),
	)
}

func (r *repository) ExistsByDescription(ctx context.Context, description, category, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM products
			WHERE LOWER(description) = LOWER($1) AND category = $2 AND id <> $3
		)`,
		description, category, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return exists, nil
}

func (r *repository) Create(ctx context.Context, p Product) (Product, error) {
	log := logger.FromCtx(ctx)

	p.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (id, description, price, category, image, specs)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING version, created_at, updated_at`,
		p.ID, p.Description, p.Price, p.Category, p.Image, p.Specs,
	).Scan(&p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		log.Error("db: failed to insert product",
			zap.String("description", p.Description),
			zap.Error(err),
		)
		return Product{}, fmt.Errorf("insert product: %w", err)
	}

	return p, nil
}

// Update writes p only if the stored version still equals p.Version.
// ErrProductNotFound means no row matched the id and version pair.
func (r *repository) Update(ctx context.Context, p Product) (Product, error) {
	err := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET description = $3, price = $4, category = $5, image = $6, specs = $7,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING version, created_at, updated_at`,
		p.ID, p.Version, p.Description, p.Price, p.Category, p.Image, p.Specs,
	).Scan(&p.Version, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}
