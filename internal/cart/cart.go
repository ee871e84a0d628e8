package cart

import (
	"context"
	"strings"

	"smoothbux-be/internal/order"
)

// Cart accumulates menu selections before checkout. It lives entirely
// on the customer's device; the server first hears about it at Submit.
type Cart struct {
	items []order.NewOrderItem
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) Add(item order.NewOrderItem) {
	c.items = append(c.items, item)
}

// Remove drops the item at the given position.
func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.items) {
		return ErrIndexOutOfRange
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy so callers cannot mutate the cart behind its back.
func (c *Cart) Items() []order.NewOrderItem {
	out := make([]order.NewOrderItem, len(c.items))
	copy(out, c.items)
	return out
}

// Submitter is the single server touchpoint of the composer.
type Submitter interface {
	CreateOrder(ctx context.Context, input order.CreateOrderInput) (*order.Order, error)
}

// Submit sends the whole cart as one request. Missing name or an empty
// cart is rejected locally, before any request is issued. The cart is
// cleared only after the server confirms.
func (c *Cart) Submit(ctx context.Context, s Submitter, customerName string) (*order.Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrNameRequired
	}
	if len(c.items) == 0 {
		return nil, ErrEmptyCart
	}

	o, err := s.CreateOrder(ctx, order.CreateOrderInput{
		CustomerName: customerName,
		Items:        c.Items(),
	})
	if err != nil {
		return nil, err
	}

	c.Clear()
	return o, nil
}
