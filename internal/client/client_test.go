package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smoothbux-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Login_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "barista", body["username"])

		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-123",
			"user":  map[string]string{"id": "u1", "username": "barista", "role": "admin"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	u, err := c.Login(context.Background(), "barista", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)
	assert.Equal(t, "tok-123", c.token)
}

func TestClient_BearerTokenSent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok-123"))
	_, err := c.GetOrders(context.Background())
	assert.NoError(t, err)
}

func TestClient_GetOrders(t *testing.T) {
	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders", r.URL.Path)
		json.NewEncoder(w).Encode([]*order.Order{
			{ID: "o1", CustomerName: "Dad", Status: order.StatusReady, CreatedAt: created},
		})
	}))
	defer srv.Close()

	orders, err := New(srv.URL).GetOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.StatusReady, orders[0].Status)
	assert.True(t, orders[0].CreatedAt.Equal(created))
}

func TestClient_GetOrderItems_FiltersByOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/order_items", r.URL.Path)
		require.Equal(t, "o1", r.URL.Query().Get("order_id"))
		w.Write([]byte(`[{"id":"i1","order_id":"o1","name":"Berry Blast","customizations":["extra ice"],"menu_items":{"name":"Berry Blast"}}]`))
	}))
	defer srv.Close()

	items, err := New(srv.URL).GetOrderItems(context.Background(), "o1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Berry Blast", items[0].MenuItem.Name)
	assert.Equal(t, []string{"extra ice"}, items[0].Customizations.Boosts)
}

func TestClient_CreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var input order.CreateOrderInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		require.Equal(t, "Dad", input.CustomerName)
		require.Len(t, input.Items, 1)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(&order.Order{ID: "o9", Status: order.StatusPending})
	}))
	defer srv.Close()

	o, err := New(srv.URL).CreateOrder(context.Background(), order.CreateOrderInput{
		CustomerName: "Dad",
		Items:        []order.NewOrderItem{{MenuItemID: "m1", Name: "Berry Blast"}},
	})
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, o.Status)
}

func TestClient_UpdateOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/orders/o1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "blending", body["status"])

		json.NewEncoder(w).Encode(&order.Order{ID: "o1", Status: order.StatusBlending})
	}))
	defer srv.Close()

	o, err := New(srv.URL).UpdateOrderStatus(context.Background(), "o1", order.StatusBlending)
	require.NoError(t, err)
	assert.Equal(t, order.StatusBlending, o.Status)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "order not found"})
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteOrder(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "order not found", apiErr.Message)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteOrder(context.Background(), "o1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestClient_GetQueue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/queue", r.URL.Path)
		w.Write([]byte(`[{"order":{"id":"o1","status":"pending"},"actions":["start","cancel"]}]`))
	}))
	defer srv.Close()

	entries, err := New(srv.URL).GetQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"start", "cancel"}, entries[0].Actions)
}
