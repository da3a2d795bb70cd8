package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pcstore-be/internal/logger"
	"pcstore-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID string, input Input) (Appointment, error)
	MyAppointments(ctx context.Context, userID string) ([]Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	Get(ctx context.Context, id, userID string, isAdmin bool) (*Appointment, error)
	Update(ctx context.Context, id, userID string, isAdmin bool, input Input) (Appointment, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Appointment, error)
	Delete(ctx context.Context, id, userID string, isAdmin bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func parseInput(input Input) (Appointment, error) {
	missing := utils.MissingFields([][2]string{
		{"fullName", input.FullName},
		{"email", input.Email},
		{"deviceType", input.DeviceType},
		{"issue", input.Issue},
		{"preferredDate", input.PreferredDate},
	})
	if len(missing) > 0 {
		return Appointment{}, fmt.Errorf("%w: missing %s", ErrInvalidAppointment, strings.Join(missing, ", "))
	}

	date, err := time.Parse(DateLayout, strings.TrimSpace(input.PreferredDate))
	if err != nil {
		return Appointment{}, fmt.Errorf("%w: preferredDate must be YYYY-MM-DD", ErrInvalidAppointment)
	}

	return Appointment{
		FullName:      strings.TrimSpace(input.FullName),
		Email:         strings.TrimSpace(input.Email),
		Phone:         strings.TrimSpace(input.Phone),
		DeviceType:    strings.TrimSpace(input.DeviceType),
		Issue:         strings.TrimSpace(input.Issue),
		Description:   strings.TrimSpace(input.Description),
		PreferredDate: date,
	}, nil
}

func (s *service) Create(ctx context.Context, userID string, input Input) (Appointment, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateAppointment"),
		zap.String("user_id", userID),
	)

	a, err := parseInput(input)
	if err != nil {
		log.Warn("invalid appointment input", zap.Error(err))
		return Appointment{}, err
	}
	a.UserID = userID
	a.Status = StatusPending

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return Appointment{}, err
	}

	log.Info("appointment booked",
		zap.String("appointment_id", created.ID),
		zap.Time("preferred_date", created.PreferredDate),
	)
	return created, nil
}

func (s *service) MyAppointments(ctx context.Context, userID string) ([]Appointment, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Get(ctx context.Context, id, userID string, isAdmin bool) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && a.UserID != userID {
		return nil, ErrForbidden
	}
	return a, nil
}

// editable loads an appointment the caller may change: admins always,
// owners only while it is still pending.
func (s *service) editable(ctx context.Context, id, userID string, isAdmin bool) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if isAdmin {
		return a, nil
	}
	if a.UserID != userID || a.Status != StatusPending {
		return nil, ErrForbidden
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, id, userID string, isAdmin bool, input Input) (Appointment, error) {
	if _, err := s.editable(ctx, id, userID, isAdmin); err != nil {
		return Appointment{}, err
	}

	a, err := parseInput(input)
	if err != nil {
		return Appointment{}, err
	}
	a.ID = id

	return s.repo.Update(ctx, a)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (Appointment, error) {
	if !status.Valid() {
		return Appointment{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	a, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return Appointment{}, err
	}

	logger.FromCtx(ctx).Info("appointment status updated",
		zap.String("appointment_id", id),
		zap.String("status", string(status)),
	)
	return a, nil
}

func (s *service) Delete(ctx context.Context, id, userID string, isAdmin bool) error {
	if _, err := s.editable(ctx, id, userID, isAdmin); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
