package order

import (
	"context"
	"database/sql"
	"errors"

	"smoothbux-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	ListOrders(ctx context.Context) ([]*Order, error)
	GetOrder(ctx context.Context, id string) (*Order, error)
	ListOrderItems(ctx context.Context, orderID string) ([]*OrderItem, error)
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error)
	UpdateStatusGuard(ctx context.Context, id string, from, to OrderStatus) error
	DeleteOrder(ctx context.Context, id string) error
	Stats(ctx context.Context) (*Stats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// ListOrders returns all orders most-recent-created first, without items.
func (r *repository) ListOrders(ctx context.Context) ([]*Order, error) {
	query := `
		SELECT id, customer_name, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Status, &o.CreatedAt); err != nil {
			logger.FromCtx(ctx).Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *repository) GetOrder(ctx context.Context, id string) (*Order, error) {
	query := `
		SELECT id, customer_name, status, created_at
		FROM orders
		WHERE id = $1
	`

	var o Order
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&o.ID, &o.CustomerName, &o.Status, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// ListOrderItems returns items joined with the catalog display name.
// The stored denormalized name wins when the catalog entry is gone.
func (r *repository) ListOrderItems(ctx context.Context, orderID string) ([]*OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.menu_item_id, oi.name, oi.customizations,
		       COALESCE(mi.name, oi.name) AS item_name
		FROM order_items oi
		LEFT JOIN menu_items mi ON oi.menu_item_id = mi.id
	`

	args := []any{}
	if orderID != "" {
		query += ` WHERE oi.order_id = $1`
		args = append(args, orderID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []*OrderItem
	for rows.Next() {
		var item OrderItem
		// menu_item_id goes NULL when the catalog entry is deleted; the
		// denormalized name keeps the row readable.
		var menuItemID sql.NullString
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&menuItemID,
			&item.Name,
			&item.Customizations,
			&item.MenuItem.Name,
		); err != nil {
			logger.FromCtx(ctx).Error("failed to scan order item row", zap.Error(err))
			return nil, err
		}
		item.MenuItemID = menuItemID.String
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// CreateOrder inserts the order and all its items in one transaction.
// The order is never observable with a partial item set.
func (r *repository) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.Int("item_count", len(input.Items)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	var o Order
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, customer_name, status)
		VALUES ($1, $2, $3)
		RETURNING id, customer_name, status, created_at
	`, uuid.New().String(), input.CustomerName, StatusPending).
		Scan(&o.ID, &o.CustomerName, &o.Status, &o.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for i, item := range input.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, menu_item_id, name, customizations)
			VALUES ($1, $2, $3, $4, $5)
		`,
			uuid.New().String(),
			o.ID,
			item.MenuItemID,
			item.Name,
			item.Customizations,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.String("menu_item_id", item.MenuItemID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return nil, err
	}

	committed = true
	log.Info("order created", zap.String("order_id", o.ID))

	return &o, nil
}

// UpdateStatus writes the status unconditionally and returns the minimal
// updated record.
func (r *repository) UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error) {
	query := `
		UPDATE orders
		SET status = $1
		WHERE id = $2
		RETURNING id, customer_name, status, created_at
	`

	var o Order
	err := r.db.QueryRowContext(ctx, query, status, id).
		Scan(&o.ID, &o.CustomerName, &o.Status, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update order status", zap.Error(err))
		return nil, err
	}

	return &o, nil
}

// UpdateStatusGuard is the compare-and-set variant used by strict
// sequencing: the write only lands if the order is still in `from`.
func (r *repository) UpdateStatusGuard(ctx context.Context, id string, from, to OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2 AND status = $3
	`, to, id, from)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrStatusConflict
	}
	return nil
}

// DeleteOrder removes the order; order_items go with it via
// ON DELETE CASCADE.
func (r *repository) DeleteOrder(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete order", zap.Error(err))
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// Stats aggregates today's orders by status.
func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'blending'),
			COUNT(*) FILTER (WHERE status = 'ready'),
			COUNT(*) FILTER (WHERE status = 'completed')
		FROM orders
		WHERE created_at >= CURRENT_DATE
	`

	var s Stats
	err := r.db.QueryRowContext(ctx, query).
		Scan(&s.Total, &s.Pending, &s.Blending, &s.Ready, &s.Completed)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query order stats", zap.Error(err))
		return nil, err
	}

	return &s, nil
}
