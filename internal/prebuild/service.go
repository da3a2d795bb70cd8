package prebuild

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pcstore-be/internal/build"
	"pcstore-be/internal/compare"
	"pcstore-be/internal/logger"
	"pcstore-be/internal/metrics"
	"pcstore-be/internal/product"

	"go.uber.org/zap"
)

// CompatibilityKey is the product spec key matched against a prebuild's tag.
const CompatibilityKey = "compatibility"

// Catalog is the slice of the product service a prebuild needs.
type Catalog interface {
	List(ctx context.Context, category string) ([]product.Product, error)
	Lookup(ctx context.Context, ids []string) ([]product.Product, error)
}

type Service interface {
	List(ctx context.Context) ([]Prebuild, error)
	ListByCategory(ctx context.Context, category string) ([]Prebuild, error)
	Get(ctx context.Context, id string) (*Detail, error)
	Create(ctx context.Context, input PrebuildInput) (Prebuild, error)
	Update(ctx context.Context, id string, input PrebuildInput) (Prebuild, error)
	Delete(ctx context.Context, id string) error
	Compatibility(ctx context.Context, id string) (build.Options, error)
	Customize(ctx context.Context, id string, sel build.Selection) (build.Quote, error)
	Compare(ctx context.Context, ids []string) (compare.Chart, error)
}

type service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) Service {
	return &service{repo: repo, catalog: catalog}
}

func (s *service) List(ctx context.Context) ([]Prebuild, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]Prebuild, error) {
	return s.repo.ListByCategory(ctx, strings.TrimSpace(category))
}

func (s *service) Get(ctx context.Context, id string) (*Detail, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.Lookup(ctx, p.IDs())
	if err != nil {
		return nil, err
	}
	found := compare.Index(products)

	components := make([]Component, 0, len(build.Slots))
	for _, slot := range build.Slots {
		pid := p.Get(slot)
		if pid == "" {
			continue
		}
		desc := pid
		if prod, ok := found.Find(pid); ok {
			desc = prod.Description
		}
		components = append(components, Component{Label: slot.Label(), ProductID: pid, Description: desc})
	}

	return &Detail{Prebuild: *p, Components: components}, nil
}

func validateInput(input PrebuildInput) error {
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidPrebuild)
	}
	if strings.TrimSpace(input.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidPrebuild)
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidPrebuild)
	}
	if msgs := build.Validate(input.Selection); len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPrebuild, strings.Join(msgs, " "))
	}
	return nil
}

func fromInput(id string, input PrebuildInput) Prebuild {
	return Prebuild{
		ID:            id,
		Category:      strings.TrimSpace(input.Category),
		Description:   strings.TrimSpace(input.Description),
		Image:         input.Image,
		Price:         input.Price,
		Compatibility: strings.TrimSpace(input.Compatibility),
		Selection:     input.Selection,
		Version:       input.Version,
	}
}

func (s *service) Create(ctx context.Context, input PrebuildInput) (Prebuild, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreatePrebuild"),
	)

	if err := validateInput(input); err != nil {
		return Prebuild{}, err
	}

	exists, err := s.repo.ExistsByDescription(ctx, input.Description, input.Category, "")
	if err != nil {
		return Prebuild{}, err
	}
	if exists {
		log.Warn("duplicate prebuild", zap.String("description", input.Description))
		return Prebuild{}, ErrPrebuildExists
	}

	p, err := s.repo.Create(ctx, fromInput("", input))
	if err != nil {
		log.Error("failed to create prebuild", zap.Error(err))
		return Prebuild{}, err
	}

	log.Info("prebuild created", zap.String("prebuild_id", p.ID))
	return p, nil
}

func (s *service) Update(ctx context.Context, id string, input PrebuildInput) (Prebuild, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdatePrebuild"),
		zap.String("prebuild_id", id),
	)

	if err := validateInput(input); err != nil {
		return Prebuild{}, err
	}
	if input.Version <= 0 {
		return Prebuild{}, fmt.Errorf("%w: version is required", ErrInvalidPrebuild)
	}

	exists, err := s.repo.ExistsByDescription(ctx, input.Description, input.Category, id)
	if err != nil {
		return Prebuild{}, err
	}
	if exists {
		return Prebuild{}, ErrPrebuildExists
	}

	p, err := s.repo.Update(ctx, fromInput(id, input))
	if errors.Is(err, ErrPrebuildNotFound) {
		if _, getErr := s.repo.GetByID(ctx, id); getErr != nil {
			return Prebuild{}, getErr
		}
		log.Warn("stale prebuild version", zap.Int("version", input.Version))
		return Prebuild{}, ErrVersionConflict
	}
	if err != nil {
		log.Error("failed to update prebuild", zap.Error(err))
		return Prebuild{}, err
	}

	log.Info("prebuild updated", zap.Int("version", p.Version))
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// eligible reports whether a product may fill a slot of a build tagged tag.
// Products without a compatibility spec fit any build.
func eligible(p product.Product, tag string) bool {
	if tag == "" {
		return true
	}
	v, ok := p.SpecValue(CompatibilityKey)
	if !ok || strings.TrimSpace(v) == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(v), tag)
}

func (s *service) options(ctx context.Context, p *Prebuild) (build.Options, error) {
	products, err := s.catalog.List(ctx, "")
	if err != nil {
		return nil, err
	}

	bySlot := make(map[string]build.Slot, len(build.Slots))
	for _, slot := range build.Slots {
		bySlot[strings.ToLower(slot.Category())] = slot
	}

	opts := build.Options{}
	for _, prod := range products {
		slot, ok := bySlot[strings.ToLower(strings.TrimSpace(prod.Category))]
		if !ok || !eligible(prod, p.Compatibility) {
			continue
		}
		opts[slot] = append(opts[slot], build.Item{
			ID:          prod.ID,
			Description: prod.Description,
			Price:       prod.Price,
			Image:       prod.Image,
		})
	}
	return opts, nil
}

func (s *service) Compatibility(ctx context.Context, id string) (build.Options, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.options(ctx, p)
}

// Customize prices sel against the prebuild's eligible components.
// The stored prebuild is left unchanged.
func (s *service) Customize(ctx context.Context, id string, sel build.Selection) (build.Quote, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CustomizePrebuild"),
		zap.String("prebuild_id", id),
	)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return build.Quote{}, err
	}

	opts, err := s.options(ctx, p)
	if err != nil {
		return build.Quote{}, err
	}

	quote, err := build.NewQuote(sel, opts)
	metrics.RecordBuildQuote(err == nil)
	if err != nil {
		log.Info("customized build incomplete", zap.Error(err))
		return build.Quote{}, err
	}

	log.Info("customized build quoted", zap.Float64("price", quote.Price))
	return quote, nil
}

func (s *service) Compare(ctx context.Context, ids []string) (compare.Chart, error) {
	if len(ids) != 2 || ids[0] == ids[1] {
		return compare.Chart{}, compare.ErrNeedTwoBuilds
	}

	builds := make([]compare.Build, 0, 2)
	var productIDs []string
	for _, id := range ids {
		p, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return compare.Chart{}, err
		}
		builds = append(builds, compare.Build{
			ID:          p.ID,
			Description: p.Description,
			Price:       p.Price,
			Selection:   FromPrebuild(*p),
		})
		productIDs = append(productIDs, p.IDs()...)
	}

	products, err := s.catalog.Lookup(ctx, productIDs)
	if err != nil {
		return compare.Chart{}, err
	}

	return compare.Compare(builds[0], builds[1], compare.Index(products))
}
