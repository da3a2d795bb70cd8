package inquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pcstore-be/internal/logger"
	"pcstore-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID string, input CreateInput) (Inquiry, error)
	MyInquiries(ctx context.Context, userID string) ([]Inquiry, error)
	List(ctx context.Context) ([]Inquiry, error)
	Update(ctx context.Context, userID, id string, input UpdateInput) (Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Inquiry, error)
	Delete(ctx context.Context, userID, id string, isAdmin bool) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) withCountdown(items []Inquiry) []Inquiry {
	now := s.now()
	for i := range items {
		items[i].Countdown = Countdown(items[i].Status, items[i].ResolvedAt, now)
	}
	return items
}

func (s *service) Create(ctx context.Context, userID string, input CreateInput) (Inquiry, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateInquiry"),
		zap.String("user_id", userID),
	)

	missing := utils.MissingFields([][2]string{
		{"fullName", input.FullName},
		{"email", input.Email},
		{"inquirySubject", input.InquirySubject},
		{"additionalDetails", input.AdditionalDetails},
	})
	if len(missing) > 0 {
		return Inquiry{}, fmt.Errorf("%w: missing %s", ErrInvalidInquiry, strings.Join(missing, ", "))
	}

	inq, err := s.repo.Create(ctx, Inquiry{
		UserID:            userID,
		FullName:          strings.TrimSpace(input.FullName),
		Email:             strings.TrimSpace(input.Email),
		InquirySubject:    strings.TrimSpace(input.InquirySubject),
		AdditionalDetails: strings.TrimSpace(input.AdditionalDetails),
		Status:            StatusPending,
	})
	if err != nil {
		log.Error("failed to create inquiry", zap.Error(err))
		return Inquiry{}, err
	}

	log.Info("inquiry created", zap.String("inquiry_id", inq.ID))
	return inq, nil
}

func (s *service) MyInquiries(ctx context.Context, userID string) ([]Inquiry, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withCountdown(items), nil
}

func (s *service) List(ctx context.Context) ([]Inquiry, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.withCountdown(items), nil
}

// ownedModifiable loads the inquiry and applies the owner and edit-window rules.
func (s *service) ownedModifiable(ctx context.Context, userID, id string, action Action) (*Inquiry, error) {
	inq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inq.UserID != userID {
		return nil, ErrForbidden
	}
	if err := CheckModifiable(inq.CreatedAt, s.now(), action); err != nil {
		return nil, err
	}
	return inq, nil
}

func (s *service) Update(ctx context.Context, userID, id string, input UpdateInput) (Inquiry, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateInquiry"),
		zap.String("inquiry_id", id),
	)

	missing := utils.MissingFields([][2]string{
		{"inquirySubject", input.InquirySubject},
		{"additionalDetails", input.AdditionalDetails},
	})
	// versions start at 1; zero means the client never sent one
	if input.Version <= 0 {
		missing = append(missing, "version")
	}
	if len(missing) > 0 {
		return Inquiry{}, fmt.Errorf("%w: missing %s", ErrInvalidInquiry, strings.Join(missing, ", "))
	}

	inq, err := s.ownedModifiable(ctx, userID, id, ActionUpdate)
	if err != nil {
		log.Warn("inquiry update refused", zap.Error(err))
		return Inquiry{}, err
	}

	inq.InquirySubject = strings.TrimSpace(input.InquirySubject)
	inq.AdditionalDetails = strings.TrimSpace(input.AdditionalDetails)
	inq.Version = input.Version

	updated, err := s.repo.Update(ctx, *inq)
	if errors.Is(err, ErrInquiryNotFound) {
		// the row was read above, so only the version can be stale
		return Inquiry{}, ErrVersionConflict
	}
	if err != nil {
		log.Error("failed to update inquiry", zap.Error(err))
		return Inquiry{}, err
	}

	updated.Countdown = Countdown(updated.Status, updated.ResolvedAt, s.now())
	log.Info("inquiry updated", zap.Int("version", updated.Version))
	return updated, nil
}

// UpdateStatus is an admin operation and ignores the edit window.
// Moving to Resolved stamps resolvedAt; leaving Resolved clears it.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (Inquiry, error) {
	if !status.Valid() {
		return Inquiry{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Inquiry{}, err
	}

	var resolvedAt *time.Time
	if status == StatusResolved {
		resolvedAt = current.ResolvedAt
		if current.Status != StatusResolved || resolvedAt == nil {
			now := s.now()
			resolvedAt = &now
		}
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status, resolvedAt)
	if err != nil {
		return Inquiry{}, err
	}

	logger.FromCtx(ctx).Info("inquiry status changed",
		zap.String("inquiry_id", id),
		zap.String("status", string(status)),
	)
	updated.Countdown = Countdown(updated.Status, updated.ResolvedAt, s.now())
	return updated, nil
}

func (s *service) Delete(ctx context.Context, userID, id string, isAdmin bool) error {
	if !isAdmin {
		if _, err := s.ownedModifiable(ctx, userID, id, ActionDelete); err != nil {
			return err
		}
	}
	return s.repo.Delete(ctx, id)
}

// PurgeExpired deletes resolved inquiries past the auto-delete deadline.
func (s *service) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-AutoDeleteAfter)
	n, err := s.repo.DeleteResolvedBefore(ctx, cutoff)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to purge inquiries", zap.Error(err))
		return 0, err
	}
	return n, nil
}
