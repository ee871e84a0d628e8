// Package client is a typed HTTP client for the smoothbux API. The
// status board and queue tools use it instead of talking to the
// database directly.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smoothbux-be/internal/menu"
	"smoothbux-be/internal/order"
	"smoothbux-be/internal/user"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError carries the server's error payload alongside the HTTP status.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		if err := json.NewDecoder(res.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(res.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

// Login authenticates and stores the returned token on the client for
// subsequent requests.
func (c *Client) Login(ctx context.Context, username, password string) (*user.User, error) {
	var res loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", loginRequest{Username: username, Password: password}, &res); err != nil {
		return nil, err
	}
	c.token = res.Token
	return &res.User, nil
}

func (c *Client) Me(ctx context.Context) (*user.User, error) {
	var u user.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) GetMenu(ctx context.Context) ([]*menu.MenuItem, error) {
	var items []*menu.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetOptions(ctx context.Context) ([]*menu.MenuOption, error) {
	var opts []*menu.MenuOption
	if err := c.do(ctx, http.MethodGet, "/api/options", nil, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func (c *Client) GetOrders(ctx context.Context) ([]*order.Order, error) {
	var orders []*order.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrderItems(ctx context.Context, orderID string) ([]*order.OrderItem, error) {
	path := "/api/order_items"
	if orderID != "" {
		path += "?order_id=" + url.QueryEscape(orderID)
	}
	var items []*order.OrderItem
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateOrder satisfies cart.Submitter.
func (c *Client) CreateOrder(ctx context.Context, input order.CreateOrderInput) (*order.Order, error) {
	var o order.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", input, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

type updateStatusRequest struct {
	Status order.OrderStatus `json:"status"`
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status order.OrderStatus) (*order.Order, error) {
	var o order.Order
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id), updateStatusRequest{Status: status}, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/orders/"+url.PathEscape(id), nil, nil)
}

func (c *Client) GetQueue(ctx context.Context) ([]*order.QueueEntry, error) {
	var entries []*order.QueueEntry
	if err := c.do(ctx, http.MethodGet, "/api/orders/queue", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) GetStats(ctx context.Context) (*order.Stats, error) {
	var s order.Stats
	if err := c.do(ctx, http.MethodGet, "/api/orders/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
