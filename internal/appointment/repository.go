package appointment

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
	Create(ctx context.Context, a Appointment) (Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]Appointment, error)
	ListAll(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, a Appointment) (Appointment, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Appointment, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const appointmentColumns = `id, user_id, full_name, email, phone, device_type, issue, description,
	preferred_date, status, created_at`

func scanAppointment(row interface{ Scan(...interface{}) error }) (Appointment, error) {
	var a Appointment
	err := row.Scan(
		&a.ID, &a.UserID, &a.FullName, &a.Email, &a.Phone, &a.DeviceType, &a.Issue, &a.Description,
		&a.PreferredDate, &a.Status, &a.CreatedAt,
	)
	return a, err
}

func (r *repository) list(ctx context.Context, query string, args ...interface{}) ([]Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}
	defer rows.Close()

	out := []Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *repository) Create(ctx context.Context, a Appointment) (Appointment, error) {
	a.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO appointments (id, user_id, full_name, email, phone, device_type, issue, description, preferred_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`,
		a.ID, a.UserID, a.FullName, a.Email, a.Phone, a.DeviceType, a.Issue, a.Description, a.PreferredDate, a.Status,
	).Scan(&a.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert appointment",
			zap.String("user_id", a.UserID),
			zap.Error(err),
		)
		return Appointment{}, fmt.Errorf("insert appointment: %w", err)
	}
	return a, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	return r.list(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE user_id = $1 ORDER BY preferred_date ASC`,
		userID,
	)
}

func (r *repository) ListAll(ctx context.Context) ([]Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentColumns+` FROM appointments ORDER BY preferred_date ASC`)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	a, err := scanAppointment(r.db.QueryRowContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

func (r *repository) Update(ctx context.Context, a Appointment) (Appointment, error) {
	updated, err := scanAppointment(r.db.QueryRowContext(ctx, `
		UPDATE appointments
		SET full_name = $2, email = $3, phone = $4, device_type = $5, issue = $6,
			description = $7, preferred_date = $8
		WHERE id = $1
		RETURNING `+appointmentColumns,
		a.ID, a.FullName, a.Email, a.Phone, a.DeviceType, a.Issue, a.Description, a.PreferredDate,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return Appointment{}, ErrAppointmentNotFound
	}
	if err != nil {
		return Appointment{}, fmt.Errorf("update appointment: %w", err)
	}
	return updated, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) (Appointment, error) {
	updated, err := scanAppointment(r.db.QueryRowContext(ctx,
		`UPDATE appointments SET status = $2 WHERE id = $1 RETURNING `+appointmentColumns,
		id, status,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return Appointment{}, ErrAppointmentNotFound
	}
	if err != nil {
		return Appointment{}, fmt.Errorf("update appointment status: %w", err)
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
