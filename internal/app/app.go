package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurante-api/internal/dal/memstore"
	customerrepo "restaurante-api/internal/dal/repositories/customer/memory"
	dishrepo "restaurante-api/internal/dal/repositories/dish/memory"
	orderrepo "restaurante-api/internal/dal/repositories/order/memory"
	"restaurante-api/internal/otel"
	"restaurante-api/internal/service/services/customersvc"
	"restaurante-api/internal/service/services/dishsvc"
	"restaurante-api/internal/service/services/ordersvc"
	"restaurante-api/internal/service/services/reportsvc"
	httptransport "restaurante-api/internal/transport/http"
)

// App represents the application.
type App struct {
	transport      *httptransport.HTTPTransport
	store          *memstore.Client
	otelController *otel.OtelController
}

// MustNewApp creates a new application.
func MustNewApp() *App {
	otelController := otel.MustInitOtel()

	store := memstore.MustNewClient()

	dishRepository := dishrepo.NewDishRepository(store)
	customerRepository := customerrepo.NewCustomerRepository(store)
	orderRepository := orderrepo.NewOrderRepository(store)

	dishSvc := dishsvc.MustNewDishService(
		dishsvc.WithDishRepository(dishRepository),
	)
	customerSvc := customersvc.MustNewCustomerService(
		customersvc.WithCustomerRepository(customerRepository),
	)
	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithOrderRepository(orderRepository),
		ordersvc.WithDishRepository(dishRepository),
		ordersvc.WithCustomerRepository(customerRepository),
	)
	reportSvc := reportsvc.MustNewReportService(
		reportsvc.WithOrderRepository(orderRepository),
		reportsvc.WithCustomerRepository(customerRepository),
	)

	transport := httptransport.NewHTTPTransport(dishSvc, customerSvc, orderSvc, reportSvc)
	transport.RegisterRoutes()

	return &App{
		transport:      transport,
		store:          store,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *App) Run() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Starting HTTP server")
		if err := a.transport.Run(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	<-stop
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Trace provider shutdown error", "error", err)
	}

	slog.Info("Application shutdown complete")
}
