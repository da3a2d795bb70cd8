package faq

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pcstore-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]FAQ, error)
	GetByID(ctx context.Context, id string) (*FAQ, error)
	ExistsByQuestion(ctx context.Context, question, excludeID string) (bool, error)
	Create(ctx context.Context, f FAQ) (FAQ, error)
	Update(ctx context.Context, f FAQ) (FAQ, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter Filter) ([]FAQ, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("category", filter.Category),
		zap.String("search", filter.Search),
	)

	query := `SELECT id, question, answer, category, created_at FROM faqs`

	where := []string{}
	args := []interface{}{}

	if c := strings.TrimSpace(filter.Category); c != "" {
		args = append(args, c)
		where = append(where, fmt.Sprintf("LOWER(category) = LOWER($%d)", len(args)))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+s+"%")
		where = append(where, fmt.Sprintf("(question ILIKE $%d OR answer ILIKE $%d)", len(args), len(args)))
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY category ASC, created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed ListFAQ", zap.Error(err))
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()

	out := []FAQ{}
	for rows.Next() {
		var f FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.CreatedAt); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*FAQ, error) {
	var f FAQ
	err := r.db.QueryRowContext(ctx,
		`SELECT id, question, answer, category, created_at FROM faqs WHERE id = $1`, id,
	).Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFAQNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get faq: %w", err)
	}
	return &f, nil
}

func (r *repository) ExistsByQuestion(ctx context.Context, question, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM faqs WHERE LOWER(question) = LOWER($1) AND id <> $2)`,
		question, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check faq exists: %w", err)
	}
	return exists, nil
}

func (r *repository) Create(ctx context.Context, f FAQ) (FAQ, error) {
	f.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO faqs (id, question, answer, category) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		f.ID, f.Question, f.Answer, f.Category,
	).Scan(&f.CreatedAt)
	if err != nil {
		return FAQ{}, fmt.Errorf("insert faq: %w", err)
	}
	return f, nil
}

func (r *repository) Update(ctx context.Context, f FAQ) (FAQ, error) {
	err := r.db.QueryRowContext(ctx,
		`UPDATE faqs SET question = $2, answer = $3, category = $4 WHERE id = $1 RETURNING created_at`,
		f.ID, f.Question, f.Answer, f.Category,
	).Scan(&f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return FAQ{}, ErrFAQNotFound
	}
	if err != nil {
		return FAQ{}, fmt.Errorf("update faq: %w", err)
	}
	return f, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFAQNotFound
	}
	return nil
}
