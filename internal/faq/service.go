package faq

import (
	"context"
	"fmt"
	"strings"

	"pcstore-be/internal/logger"
	"pcstore-be/internal/utils"

	"go.uber.org/zap"
)

const defaultCategory = "General"

type Service interface {
	List(ctx context.Context, filter Filter) ([]FAQ, error)
	Get(ctx context.Context, id string) (*FAQ, error)
	Create(ctx context.Context, input Input) (FAQ, error)
	Update(ctx context.Context, id string, input Input) (FAQ, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func normalize(input Input) (FAQ, error) {
	missing := utils.MissingFields([][2]string{
		{"question", input.Question},
		{"answer", input.Answer},
	})
	if len(missing) > 0 {
		return FAQ{}, fmt.Errorf("%w: missing %s", ErrInvalidFAQ, strings.Join(missing, ", "))
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = defaultCategory
	}
	return FAQ{
		Question: strings.TrimSpace(input.Question),
		Answer:   strings.TrimSpace(input.Answer),
		Category: category,
	}, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]FAQ, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Get(ctx context.Context, id string) (*FAQ, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) save(ctx context.Context, id string, input Input) (FAQ, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SaveFAQ"),
		zap.String("faq_id", id),
	)

	f, err := normalize(input)
	if err != nil {
		return FAQ{}, err
	}

	exists, err := s.repo.ExistsByQuestion(ctx, f.Question, id)
	if err != nil {
		log.Error("failed to check duplicate faq", zap.Error(err))
		return FAQ{}, err
	}
	if exists {
		return FAQ{}, ErrFAQExists
	}

	if id == "" {
		return s.repo.Create(ctx, f)
	}
	f.ID = id
	return s.repo.Update(ctx, f)
}

func (s *service) Create(ctx context.Context, input Input) (FAQ, error) {
	return s.save(ctx, "", input)
}

func (s *service) Update(ctx context.Context, id string, input Input) (FAQ, error) {
	return s.save(ctx, id, input)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
