package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pcstore-be/internal/db"
	"pcstore-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o Order) (*Order, error)
	ExistsByOrderID(ctx context.Context, orderID string) (bool, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Order, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `id, order_id, customer_id, items, subtotal, tax, total_amount, status, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.OrderID, &o.CustomerID, &o.Items,
		&o.Subtotal, &o.Tax, &o.TotalAmount, &o.Status, &o.CreatedAt,
	)
	if o.Items == nil {
		o.Items = Items{}
	}
	return o, err
}

func (r *repository) query(ctx context.Context, query string, args ...interface{}) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Create inserts the order in a single statement. A duplicate order_id
// surfaces as ErrOrderExists.
func (r *repository) Create(ctx context.Context, o Order) (*Order, error) {
	o.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO success_orders (id, order_id, customer_id, items, subtotal, tax, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		o.ID, o.OrderID, o.CustomerID, o.Items, o.Subtotal, o.Tax, o.TotalAmount, o.Status,
	).Scan(&o.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrOrderExists
		}
		logger.FromCtx(ctx).Error("db: failed to insert order",
			zap.String("order_id", o.OrderID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &o, nil
}

func (r *repository) ExistsByOrderID(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM success_orders WHERE order_id = $1)`, orderID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check order exists: %w", err)
	}
	return exists, nil
}

func (r *repository) ListByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	return r.query(ctx,
		`SELECT `+orderColumns+` FROM success_orders WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID,
	)
}

func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	return r.query(ctx, `SELECT `+orderColumns+` FROM success_orders ORDER BY created_at DESC`)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM success_orders WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`UPDATE success_orders SET status = $2 WHERE id = $1 RETURNING `+orderColumns,
		id, status,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return &o, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM success_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
