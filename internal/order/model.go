package order

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusBlending  OrderStatus = "blending"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
)

// Customizations is the structured record attached to an order item.
// Early orders stored a bare list of strings; UnmarshalJSON folds that
// legacy shape into Boosts so historical rows keep rendering.
type Customizations struct {
	Size   string   `json:"size,omitempty"`
	Juice  string   `json:"juice,omitempty"`
	Boosts []string `json:"boosts,omitempty"`
	Notes  string   `json:"notes,omitempty"`
}

func (c *Customizations) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var legacy []string
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return err
		}
		*c = Customizations{Boosts: legacy}
		return nil
	}

	type plain Customizations
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Customizations(p)
	return nil
}

// Value / Scan store customizations as a JSON column.
func (c Customizations) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Customizations) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = Customizations{}
		return nil
	case []byte:
		return c.UnmarshalJSON(v)
	case string:
		return c.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("unsupported customizations type %T", src)
	}
}

// IsZero reports whether nothing was customized.
func (c Customizations) IsZero() bool {
	return c.Size == "" && c.Juice == "" && len(c.Boosts) == 0 && c.Notes == ""
}

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items,omitempty"`
}

// ItemRef mirrors the joined catalog row on the wire.
type ItemRef struct {
	Name string `json:"name"`
}

type OrderItem struct {
	ID             string         `json:"id"`
	OrderID        string         `json:"order_id"`
	MenuItemID     string         `json:"menu_item_id"`
	Name           string         `json:"name"`
	Customizations Customizations `json:"customizations"`
	MenuItem       ItemRef        `json:"menu_items"`
}

type NewOrderItem struct {
	MenuItemID     string         `json:"menu_item_id"`
	Name           string         `json:"name"`
	Customizations Customizations `json:"customizations"`
}

type CreateOrderInput struct {
	CustomerName string         `json:"customer_name"`
	Items        []NewOrderItem `json:"items"`
}

// Stats is the per-day order summary for staff.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Blending  int `json:"blending"`
	Ready     int `json:"ready"`
	Completed int `json:"completed"`
}
