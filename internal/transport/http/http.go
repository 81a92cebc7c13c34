package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"

	"restaurante-api/internal/service/models/customer"
	"restaurante-api/internal/service/models/dish"
	"restaurante-api/internal/service/models/order"
	"restaurante-api/internal/service/models/orderitem"
	"restaurante-api/internal/service/models/report"
	"restaurante-api/internal/transport/http/customers"
	"restaurante-api/internal/transport/http/dishes"
	"restaurante-api/internal/transport/http/orders"
	"restaurante-api/internal/transport/http/reports"
	"restaurante-api/internal/transport/http/respond"
	"restaurante-api/pkg/http/middleware/trace"
	"restaurante-api/pkg/logger"
)

type dishService interface {
	List(ctx context.Context) ([]dish.Dish, error)
	Get(ctx context.Context, id int64) (dish.Dish, error)
	Create(ctx context.Context, d dish.Dish) (dish.Dish, error)
	Update(ctx context.Context, id int64, d dish.Dish) (dish.Dish, error)
	Delete(ctx context.Context, id int64) error
}

type customerService interface {
	List(ctx context.Context) ([]customer.Customer, error)
	Get(ctx context.Context, id int64) (customer.Customer, error)
	Create(ctx context.Context, c customer.Customer) (customer.Customer, error)
	Update(ctx context.Context, id int64, c customer.Customer) (customer.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type orderService interface {
	List(ctx context.Context) ([]order.Order, error)
	Get(ctx context.Context, id int64) (order.Order, error)
	Create(ctx context.Context, customerID int64, items []orderitem.NewItem) (order.Order, error)
	Delete(ctx context.Context, id int64) error
}

type reportService interface {
	OrdersByCustomer(ctx context.Context) ([]report.CustomerGroup, error)
}

type HTTPTransport struct {
	server      *http.Server
	router      *chi.Mux
	dishSvc     dishService
	customerSvc customerService
	orderSvc    orderService
	reportSvc   reportService
}

func NewHTTPTransport(
	dishSvc dishService,
	customerSvc customerService,
	orderSvc orderService,
	reportSvc reportService,
) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:      server,
		router:      router,
		dishSvc:     dishSvc,
		customerSvc: customerSvc,
		orderSvc:    orderSvc,
		reportSvc:   reportSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// Router returns the underlying router, mainly for tests.
func (h *HTTPTransport) Router() *chi.Mux {
	return h.router
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Get("/", h.apiIndex)

	h.router.Route("/api", func(r chi.Router) {
		r.Route("/pratos", func(r chi.Router) {
			r.Get("/", h.listDishes)
			r.Post("/", h.createDish)
			r.Get("/{id}", h.getDish)
			r.Put("/{id}", h.updateDish)
			r.Delete("/{id}", h.deleteDish)
		})

		r.Route("/clientes", func(r chi.Router) {
			r.Get("/", h.listCustomers)
			r.Post("/", h.createCustomer)
			r.Get("/{id}", h.getCustomer)
			r.Put("/{id}", h.updateCustomer)
			r.Delete("/{id}", h.deleteCustomer)
		})

		r.Route("/pedidos", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.createOrder)
			r.Get("/{id}", h.getOrder)
			r.Delete("/{id}", h.deleteOrder)
		})

		r.Get("/relatorios/pedidos-por-cliente", h.ordersByCustomer)
	})
}

// apiIndex lists the top-level endpoints, same shape as the original API.
func (h *HTTPTransport) apiIndex(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "API do Sistema de Restaurante",
		"endpoints": map[string]string{
			"pratos":    "/api/pratos",
			"clientes":  "/api/clientes",
			"pedidos":   "/api/pedidos",
			"relatorio": "/api/relatorios/pedidos-por-cliente",
		},
	})
}

func (h *HTTPTransport) listDishes(w http.ResponseWriter, r *http.Request) {
	dishes.List(w, r, h.dishSvc)
}

func (h *HTTPTransport) getDish(w http.ResponseWriter, r *http.Request) {
	dishes.Get(w, r, h.dishSvc)
}

func (h *HTTPTransport) createDish(w http.ResponseWriter, r *http.Request) {
	dishes.Create(w, r, h.dishSvc)
}

func (h *HTTPTransport) updateDish(w http.ResponseWriter, r *http.Request) {
	dishes.Update(w, r, h.dishSvc)
}

func (h *HTTPTransport) deleteDish(w http.ResponseWriter, r *http.Request) {
	dishes.Delete(w, r, h.dishSvc)
}

func (h *HTTPTransport) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers.List(w, r, h.customerSvc)
}

func (h *HTTPTransport) getCustomer(w http.ResponseWriter, r *http.Request) {
	customers.Get(w, r, h.customerSvc)
}

func (h *HTTPTransport) createCustomer(w http.ResponseWriter, r *http.Request) {
	customers.Create(w, r, h.customerSvc)
}

func (h *HTTPTransport) updateCustomer(w http.ResponseWriter, r *http.Request) {
	customers.Update(w, r, h.customerSvc)
}

func (h *HTTPTransport) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	customers.Delete(w, r, h.customerSvc)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	orders.List(w, r, h.orderSvc)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	orders.Get(w, r, h.orderSvc)
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	orders.Create(w, r, h.orderSvc)
}

func (h *HTTPTransport) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orders.Delete(w, r, h.orderSvc)
}

func (h *HTTPTransport) ordersByCustomer(w http.ResponseWriter, r *http.Request) {
	reports.OrdersByCustomer(w, r, h.reportSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))
	router.Use(trace.NewTraceMiddleware)

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}
