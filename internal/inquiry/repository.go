package inquiry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pcstore-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, inq Inquiry) (Inquiry, error)
	ListByUser(ctx context.Context, userID string) ([]Inquiry, error)
	ListAll(ctx context.Context) ([]Inquiry, error)
	GetByID(ctx context.Context, id string) (*Inquiry, error)
	Update(ctx context.Context, inq Inquiry) (Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status Status, resolvedAt *time.Time) (Inquiry, error)
	Delete(ctx context.Context, id string) error
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const inquiryColumns = `id, user_id, full_name, email, inquiry_subject, additional_details,
	status, created_at, updated_at, resolved_at, version`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInquiry(row rowScanner) (Inquiry, error) {
	var (
		inq        Inquiry
		resolvedAt sql.NullTime
	)
	err := row.Scan(
		&inq.ID, &inq.UserID, &inq.FullName, &inq.Email, &inq.InquirySubject, &inq.AdditionalDetails,
		&inq.Status, &inq.CreatedAt, &inq.UpdatedAt, &resolvedAt, &inq.Version,
	)
	if resolvedAt.Valid {
		t := resolvedAt.Time
		inq.ResolvedAt = &t
	}
	return inq, err
}

func (r *repository) query(ctx context.Context, query string, args ...interface{}) ([]Inquiry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query inquiries: %w", err)
	}
	defer rows.Close()

	out := []Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		out = append(out, inq)
	}
	return out, rows.Err()
}

func (r *repository) Create(ctx context.Context, inq Inquiry) (Inquiry, error) {
	inq.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO inquiries (id, user_id, full_name, email, inquiry_subject, additional_details, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at, version`,
		inq.ID, inq.UserID, inq.FullName, inq.Email, inq.InquirySubject, inq.AdditionalDetails, inq.Status,
	).Scan(&inq.CreatedAt, &inq.UpdatedAt, &inq.Version)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert inquiry",
			zap.String("user_id", inq.UserID),
			zap.Error(err),
		)
		return Inquiry{}, fmt.Errorf("insert inquiry: %w", err)
	}
	return inq, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Inquiry, error) {
	return r.query(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
}

func (r *repository) ListAll(ctx context.Context) ([]Inquiry, error) {
	return r.query(ctx, `SELECT `+inquiryColumns+` FROM inquiries ORDER BY created_at DESC`)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Inquiry, error) {
	inq, err := scanInquiry(r.db.QueryRowContext(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInquiryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get inquiry: %w", err)
	}
	return &inq, nil
}

// Update changes the subject and details if the version still matches.
func (r *repository) Update(ctx context.Context, inq Inquiry) (Inquiry, error) {
	updated, err := scanInquiry(r.db.QueryRowContext(ctx, `
		UPDATE inquiries
		SET inquiry_subject = $3, additional_details = $4, version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING `+inquiryColumns,
		inq.ID, inq.Version, inq.InquirySubject, inq.AdditionalDetails,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return Inquiry{}, ErrInquiryNotFound
	}
	if err != nil {
		return Inquiry{}, fmt.Errorf("update inquiry: %w", err)
	}
	return updated, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status, resolvedAt *time.Time) (Inquiry, error) {
	updated, err := scanInquiry(r.db.QueryRowContext(ctx, `
		UPDATE inquiries
		SET status = $2, resolved_at = $3, version = version + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING `+inquiryColumns,
		id, status, resolvedAt,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return Inquiry{}, ErrInquiryNotFound
	}
	if err != nil {
		return Inquiry{}, fmt.Errorf("update inquiry status: %w", err)
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInquiryNotFound
	}
	return nil
}

// DeleteResolvedBefore removes resolved inquiries whose resolved_at is before cutoff.
func (r *repository) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM inquiries WHERE status = $1 AND resolved_at IS NOT NULL AND resolved_at < $2`,
		StatusResolved, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("purge inquiries: %w", err)
	}
	return res.RowsAffected()
}
