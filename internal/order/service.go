package order

import (
	"context"
	"strings"

	"smoothbux-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	ListItems(ctx context.Context, orderID string) ([]*OrderItem, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error)
	Delete(ctx context.Context, id string) error
	Queue(ctx context.Context) ([]*QueueEntry, error)
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo   Repository
	engine *Engine
}

func NewService(repo Repository, engine *Engine) Service {
	return &service{repo: repo, engine: engine}
}

// Create validates and submits a new order. Validation failures never
// reach the store.
func (s *service) Create(ctx context.Context, input CreateOrderInput) (*Order, error) {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	if input.CustomerName == "" {
		return nil, ErrCustomerNameRequired
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range input.Items {
		if item.MenuItemID == "" {
			return nil, ErrMenuItemRequired
		}
	}

	return s.repo.CreateOrder(ctx, input)
}

func (s *service) List(ctx context.Context) ([]*Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *service) ListItems(ctx context.Context, orderID string) ([]*OrderItem, error) {
	return s.repo.ListOrderItems(ctx, orderID)
}

// UpdateStatus applies a staff transition through the lifecycle engine.
// In permissive mode any canonical status is written directly, so the
// operator can correct a mis-click; in strict mode the jump must be the
// adjacent forward step and the write is guarded against concurrent
// staff.
func (s *service) UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error) {
	if !s.engine.Strict() {
		if err := s.engine.Validate("", status); err != nil {
			return nil, err
		}
		return s.repo.UpdateStatus(ctx, id, status)
	}

	current, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.engine.Validate(current.Status, status); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatusGuard(ctx, id, current.Status, status); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)),
	)

	current.Status = status
	return current, nil
}

// Delete cancels an order entirely; items cascade with it.
func (s *service) Delete(ctx context.Context, id string) error {
	if s.engine.Strict() {
		current, err := s.repo.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		if !s.engine.CanCancel(current.Status) {
			return ErrOrderCompleted
		}
	}

	return s.repo.DeleteOrder(ctx, id)
}

// Queue derives the staff fulfillment view: active orders oldest first,
// each with its items joined in.
func (s *service) Queue(ctx context.Context) ([]*QueueEntry, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListOrderItems(ctx, "")
	if err != nil {
		return nil, err
	}

	byOrder := make(map[string][]OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], *item)
	}
	for _, o := range orders {
		o.Items = byOrder[o.ID]
	}

	return DeriveQueue(orders), nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}
