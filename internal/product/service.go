package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pcstore-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, category string) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Lookup(ctx context.Context, ids []string) ([]Product, error)
	Create(ctx context.Context, input ProductInput) (Product, error)
	Update(ctx context.Context, id string, input ProductInput) (Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, category string) ([]Product, error) {
	return s.repo.List(ctx, strings.TrimSpace(category))
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Lookup returns the products for ids, deduplicated, in the order they were found.
func (s *service) Lookup(ctx context.Context, ids []string) ([]Product, error) {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return s.repo.GetByIDs(ctx, unique)
}

func validateInput(input ProductInput) error {
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidProduct)
	}
	if strings.TrimSpace(input.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidProduct)
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	}
	return nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	if err := validateInput(input); err != nil {
		log.Warn("invalid product input", zap.Error(err))
		return Product{}, err
	}

	exists, err := s.repo.ExistsByDescription(ctx, input.Description, input.Category, "")
	if err != nil {
		log.Error("failed to check duplicate product", zap.Error(err))
		return Product{}, err
	}
	if exists {
		log.Warn("duplicate product",
			zap.String("description", input.Description),
			zap.String("category", input.Category),
		)
		return Product{}, ErrProductExists
	}

	p, err := s.repo.Create(ctx, Product{
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
		Image:       input.Image,
		Specs:       input.Specs,
	})
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return Product{}, err
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return p, nil
}

func (s *service) Update(ctx context.Context, id string, input ProductInput) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateProduct"),
		zap.String("product_id", id),
	)

	start := time.Now()

	if err := validateInput(input); err != nil {
		return Product{}, err
	}
	if input.Version <= 0 {
		return Product{}, fmt.Errorf("%w: version is required", ErrInvalidProduct)
	}

	exists, err := s.repo.ExistsByDescription(ctx, input.Description, input.Category, id)
	if err != nil {
		return Product{}, err
	}
	if exists {
		return Product{}, ErrProductExists
	}

	p, err := s.repo.Update(ctx, Product{
		ID:          id,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
		Image:       input.Image,
		Specs:       input.Specs,
		Version:     input.Version,
	})
	if errors.Is(err, ErrProductNotFound) {
		// Distinguish a missing row from a stale version.
		if _, getErr := s.repo.GetByID(ctx, id); getErr != nil {
			return Product{}, getErr
		}
		log.Warn("stale product version", zap.Int("version", input.Version))
		return Product{}, ErrVersionConflict
	}
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return Product{}, err
	}

	log.Info("product updated",
		zap.Int("version", p.Version),
		zap.Duration("duration", time.Since(start)),
	)
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, ErrProductNotFound) {
			logger.FromCtx(ctx).Error("failed to delete product",
				zap.String("product_id", id),
				zap.Error(err),
			)
		}
		return err
	}
	return nil
}
