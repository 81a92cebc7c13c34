package reportsvc

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"

	"restaurante-api/internal/dal/interfaces/icustomerrepo"
	"restaurante-api/internal/dal/interfaces/iorderrepo"
	"restaurante-api/internal/service/models/customer"
	"restaurante-api/internal/service/models/report"
)

// ReportService derives read-only aggregations from the other collections.
type ReportService struct {
	orderRepo    iorderrepo.IOrderRepository
	customerRepo icustomerrepo.ICustomerRepository
}

// option is a function that configures the ReportService.
type option func(*ReportService)

// MustNewReportService creates a new ReportService.
func MustNewReportService(opts ...option) *ReportService {
	s := &ReportService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithOrderRepository sets the order repository for the ReportService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(orderRepo iorderrepo.IOrderRepository) option {
	return func(s *ReportService) {
		s.orderRepo = orderRepo
	}
}

// WithCustomerRepository sets the customer repository for the ReportService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCustomerRepository(customerRepo icustomerrepo.ICustomerRepository) option {
	return func(s *ReportService) {
		s.customerRepo = customerRepo
	}
}

// OrdersByCustomer groups every order under its customer, accumulating the
// order list, total spend and order count per customer. Groups come out in
// first-seen-customer order. Orders whose customer no longer exists are
// skipped: a deleted customer leaves dangling orders behind, and the report
// tolerates them rather than failing.
func (s *ReportService) OrdersByCustomer(ctx context.Context) ([]report.CustomerGroup, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "ReportService.OrdersByCustomer")
	defer span.End()

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[int64]*report.CustomerGroup)
	seen := make([]int64, 0)

	for _, o := range orders {
		c, err := s.customerRepo.GetByID(ctx, o.CustomerID)
		if errors.Is(err, customer.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		g, ok := groups[c.ID]
		if !ok {
			g = &report.CustomerGroup{Customer: c}
			groups[c.ID] = g
			seen = append(seen, c.ID)
		}

		g.Orders = append(g.Orders, o)
		g.TotalSpent += o.TotalValue
		g.OrderCount++
	}

	out := make([]report.CustomerGroup, 0, len(seen))
	for _, id := range seen {
		out = append(out, *groups[id])
	}

	return out, nil
}
