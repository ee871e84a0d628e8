// Package transport wires the HTTP surface: routing, handler structs
// per domain, and the mapping from domain errors to status codes.
package transport

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"smoothbux-be/internal/logger"
	"smoothbux-be/internal/menu"
	"smoothbux-be/internal/middleware"
	"smoothbux-be/internal/order"
	"smoothbux-be/internal/user"
	"smoothbux-be/internal/utils"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 30 * time.Second
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 30 * time.Second
)

func SetupRoutes(users user.Service, menus menu.Service, orders order.Service) *Server {
	router := mux.NewRouter()
	router.Use(middleware.CORS)
	router.Use(logger.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.AuthMiddleware)
	router.Use(middleware.RateLimitMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	auth := NewAuthHandler(users)
	api.HandleFunc("/login", auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", auth.Me).Methods(http.MethodGet)

	m := NewMenuHandler(menus)
	api.HandleFunc("/menu", m.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/options", m.ListOptions).Methods(http.MethodGet)

	o := NewOrderHandler(orders)
	api.HandleFunc("/orders", o.List).Methods(http.MethodGet)
	api.HandleFunc("/orders", o.Create).Methods(http.MethodPost)
	api.HandleFunc("/order_items", o.ListItems).Methods(http.MethodGet)

	// Catalog management and fulfillment actions are staff only.
	admin := api.NewRoute().Subrouter()
	admin.Use(middleware.RequireRole(utils.RoleAdmin))

	admin.HandleFunc("/register", auth.Register).Methods(http.MethodPost)

	admin.HandleFunc("/menu", m.CreateItem).Methods(http.MethodPost)
	admin.HandleFunc("/menu/{id}", m.DeleteItem).Methods(http.MethodDelete)
	admin.HandleFunc("/menu/{id}/availability", m.SetItemAvailability).Methods(http.MethodPut)
	admin.HandleFunc("/options", m.CreateOption).Methods(http.MethodPost)
	admin.HandleFunc("/options/{id}", m.DeleteOption).Methods(http.MethodDelete)

	admin.HandleFunc("/orders/queue", o.Queue).Methods(http.MethodGet)
	admin.HandleFunc("/orders/stats", o.Stats).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", o.UpdateStatus).Methods(http.MethodPut)
	admin.HandleFunc("/orders/{id}", o.Delete).Methods(http.MethodDelete)

	return &Server{Router: router}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
