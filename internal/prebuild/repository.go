package prebuild

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pcstore-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Prebuild, error)
	ListByCategory(ctx context.Context, category string) ([]Prebuild, error)
	GetByID(ctx context.Context, id string) (*Prebuild, error)
	ExistsByDescription(ctx context.Context, description, category, excludeID string) (bool, error)
	Create(ctx context.Context, p Prebuild) (Prebuild, error)
	Update(ctx context.Context, p Prebuild) (Prebuild, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const prebuildColumns = `id, category, description, image, price, compatibility,
	processor, gpu, ram, storage, power_supply, casings, version, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPrebuild(row rowScanner) (Prebuild, error) {
	var p Prebuild
	err := row.Scan(
		&p.ID, &p.Category, &p.Description, &p.Image, &p.Price, &p.Compatibility,
		&p.Processor, &p.GPU, &p.RAM, &p.Storage, &p.PowerSupply, &p.Casings,
		&p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *repository) query(ctx context.Context, query string, args ...interface{}) ([]Prebuild, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query prebuilds: %w", err)
	}
	defer rows.Close()

	out := []Prebuild{}
	for rows.Next() {
		p, err := scanPrebuild(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prebuild: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repository) List(ctx context.Context) ([]Prebuild, error) {
	return r.query(ctx, `SELECT `+prebuildColumns+` FROM prebuilds ORDER BY created_at DESC`)
}

func (r *repository) ListByCategory(ctx context.Context, category string) ([]Prebuild, error) {
	return r.query(ctx,
		`SELECT `+prebuildColumns+` FROM prebuilds WHERE LOWER(category) = LOWER($1) ORDER BY created_at DESC`,
		category,
	)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Prebuild, error) {
	p, err := scanPrebuild(r.db.QueryRowContext(ctx,
		`SELECT `+prebuildColumns+` FROM prebuilds WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPrebuildNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get prebuild: %w", err)
	}
	return &p, nil
}

func (r *repository) ExistsByDescription(ctx context.Context, description, category, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM prebuilds
			WHERE LOWER(description) = LOWER($1) AND LOWER(category) = LOWER($2) AND id <> $3
		)`,
		description, category, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check prebuild exists: %w", err)
	}
	return exists, nil
}

func (r *repository) Create(ctx context.Context, p Prebuild) (Prebuild, error) {
	p.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO prebuilds (
			id, category, description, image, price, compatibility,
			processor, gpu, ram, storage, power_supply, casings
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING version, created_at, updated_at`,
		p.ID, p.Category, p.Description, p.Image, p.Price, p.Compatibility,
		p.Processor, p.GPU, p.RAM, p.Storage, p.PowerSupply, p.Casings,
	).Scan(&p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert prebuild",
			zap.String("description", p.Description),
			zap.Error(err),
		)
		return Prebuild{}, fmt.Errorf("insert prebuild: %w", err)
	}
	return p, nil
}

// Update is conditional on p.Version; ErrPrebuildNotFound means nothing matched.
func (r *repository) Update(ctx context.Context, p Prebuild) (Prebuild, error) {
	err := r.db.QueryRowContext(ctx, `
		UPDATE prebuilds
		SET category = $3, description = $4, image = $5, price = $6, compatibility = $7,
			processor = $8, gpu = $9, ram = $10, storage = $11, power_supply = $12, casings = $13,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING version, created_at, updated_at`,
		p.ID, p.Version, p.Category, p.Description, p.Image, p.Price, p.Compatibility,
		p.Processor, p.GPU, p.RAM, p.Storage, p.PowerSupply, p.Casings,
	).Scan(&p.Version, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Prebuild{}, ErrPrebuildNotFound
	}
	if err != nil {
		return Prebuild{}, fmt.Errorf("update prebuild: %w", err)
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM prebuilds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prebuild: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPrebuildNotFound
	}
	return nil
}
