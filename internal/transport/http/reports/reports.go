package reports

import (
	"context"
	"log/slog"
	"net/http"

	"restaurante-api/internal/service/models/report"
	"restaurante-api/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	OrdersByCustomer(ctx context.Context) ([]report.CustomerGroup, error)
}

// OrdersByCustomer handles the per-customer orders report request.
func OrdersByCustomer(w http.ResponseWriter, r *http.Request, service service) {
	groups, err := service.OrdersByCustomer(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		slog.Error("Error building orders-by-customer report", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, groups)
}
