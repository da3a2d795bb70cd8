package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pcstore-be/internal/build"
	"pcstore-be/internal/events"
	"pcstore-be/internal/logger"
	"pcstore-be/internal/metrics"
	"pcstore-be/internal/product"
	"pcstore-be/internal/utils"

	"go.uber.org/zap"
)

const customBuildDescription = "Custom build"

// Catalog prices order lines from the product table.
type Catalog interface {
	Lookup(ctx context.Context, ids []string) ([]product.Product, error)
}

type Service interface {
	Create(ctx context.Context, customerID string, input CreateInput) (*Order, error)
	MyOrders(ctx context.Context, customerID string) ([]Order, error)
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id, userID string, isAdmin bool) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	catalog   Catalog
	publisher events.Publisher
	newID     func() string
}

func NewService(repo Repository, catalog Catalog, publisher events.Publisher) Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &service{
		repo:      repo,
		catalog:   catalog,
		publisher: publisher,
		newID:     utils.GenerateOrderNumber,
	}
}

// price resolves unit prices server-side. Product lines take the catalog
// price; prebuild lines take the sum of their snapshot components.
func (s *service) price(ctx context.Context, items []OrderItem) error {
	var ids []string
	for _, it := range items {
		if it.ItemType == ItemPrebuild {
			for _, spec := range it.Specs {
				ids = append(ids, spec.ID)
			}
			continue
		}
		ids = append(ids, it.ItemID)
	}

	products, err := s.catalog.Lookup(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for i := range items {
		it := &items[i]
		if it.ItemType == ItemPrebuild {
			sum, err := priceSnapshot(it.Specs, byID)
			if err != nil {
				return err
			}
			it.UnitPrice = sum
			if it.Description == "" {
				it.Description = customBuildDescription
			}
			continue
		}

		p, ok := byID[it.ItemID]
		if !ok {
			return fmt.Errorf("%w: unknown product %s", ErrInvalidOrder, it.ItemID)
		}
		it.UnitPrice = p.Price
		if it.Description == "" {
			it.Description = p.Description
		}
	}
	return nil
}

// priceSnapshot sums a prebuild snapshot. Every entry must name a distinct
// slot and a catalog product of that slot's category.
func priceSnapshot(specs []build.Spec, byID map[string]product.Product) (float64, error) {
	seen := make(map[build.Slot]struct{}, len(specs))
	var sum float64
	for _, spec := range specs {
		slot, ok := build.SlotByLabel(spec.Label)
		if !ok {
			return 0, fmt.Errorf("%w: unknown build slot %q", ErrInvalidOrder, spec.Label)
		}
		if _, dup := seen[slot]; dup {
			return 0, fmt.Errorf("%w: duplicate build slot %s", ErrInvalidOrder, slot)
		}
		seen[slot] = struct{}{}

		p, ok := byID[spec.ID]
		if !ok {
			return 0, fmt.Errorf("%w: unknown product %s", ErrInvalidOrder, spec.ID)
		}
		if !strings.EqualFold(strings.TrimSpace(p.Category), slot.Category()) {
			return 0, fmt.Errorf("%w: product %s is not a %s", ErrInvalidOrder, spec.ID, slot)
		}
		sum += p.Price
	}
	return sum, nil
}

func (s *service) Create(ctx context.Context, customerID string, input CreateInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.String("customer_id", customerID),
	)

	start := time.Now()

	if customerID == "" {
		return nil, ErrUnauthorized
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	}

	items := make([]OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		if strings.TrimSpace(in.ItemID) == "" {
			return nil, fmt.Errorf("%w: itemId is required", ErrInvalidOrder)
		}
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidOrder)
		}
		items = append(items, Classify(in))
	}

	if err := s.price(ctx, items); err != nil {
		log.Warn("failed to price order", zap.Error(err))
		return nil, err
	}

	orderID := strings.TrimSpace(input.OrderID)
	if orderID == "" {
		orderID = s.newID()
	} else {
		if !utils.IsOrderNumber(orderID) {
			return nil, fmt.Errorf("%w: malformed orderId %q", ErrInvalidOrder, orderID)
		}
		exists, err := s.repo.ExistsByOrderID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if exists {
			log.Warn("duplicate order id", zap.String("order_id", orderID))
			return nil, ErrOrderExists
		}
	}

	subtotal, tax, total := Totals(items)

	o, err := s.repo.Create(ctx, Order{
		OrderID:     orderID,
		CustomerID:  customerID,
		Items:       items,
		Subtotal:    subtotal,
		Tax:         tax,
		TotalAmount: total,
		Status:      StatusPending,
	})
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	metrics.RecordOrderCreated()

	err = s.publisher.PublishOrderCreated(ctx, events.OrderCreatedEvent{
		OrderID:     o.ID,
		OrderNumber: o.OrderID,
		CustomerID:  o.CustomerID,
		ItemCount:   len(o.Items),
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
	})
	if err != nil {
		log.Error("failed to publish order.created", zap.String("order_id", o.OrderID), zap.Error(err))
	}

	log.Info("order created",
		zap.String("order_id", o.OrderID),
		zap.Float64("total", o.TotalAmount),
		zap.Duration("duration", time.Since(start)),
	)
	return o, nil
}

func (s *service) MyOrders(ctx context.Context, customerID string) ([]Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *service) List(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Get(ctx context.Context, id, userID string, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.CustomerID != userID {
		return nil, ErrUnauthorized
	}
	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	o, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", o.OrderID),
		zap.String("status", string(status)),
	)
	return o, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
