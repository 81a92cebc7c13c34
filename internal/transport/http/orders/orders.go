package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"restaurante-api/internal/service/models/customer"
	"restaurante-api/internal/service/models/order"
	"restaurante-api/internal/service/models/orderitem"
	"restaurante-api/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context) ([]order.Order, error)
	Get(ctx context.Context, id int64) (order.Order, error)
	Create(ctx context.Context, customerID int64, items []orderitem.NewItem) (order.Order, error)
	Delete(ctx context.Context, id int64) error
}

const msgRequired = "ClienteId e itens são obrigatórios"

// itemInCreateOrderRequest represents one line of a create order request.
// Quantity is passed through unvalidated.
type itemInCreateOrderRequest struct {
	DishID   int64 `json:"pratoId"`
	Quantity int   `json:"quantidade"`
}

// createOrderRequest represents a create order request. required on the items
// slice rejects nil and min=1 rejects empty, matching the required check on
// clienteId.
type createOrderRequest struct {
	CustomerID int64                      `json:"clienteId" validate:"required"`
	Items      []itemInCreateOrderRequest `json:"itens"     validate:"required,min=1"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// toItems converts the request lines to orderitem.NewItem values.
func (r *createOrderRequest) toItems() []orderitem.NewItem {
	items := make([]orderitem.NewItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, orderitem.NewItem{
			DishID:   item.DishID,
			Quantity: item.Quantity,
		})
	}

	return items
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// List handles the list orders request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	all, err := service.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		slog.Error("Error listing orders", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, all)
}

// Get handles the get order request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, order.ErrNotFound.Error())

		return
	}

	o, err := service.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, http.StatusNotFound, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, o)
}

// Create handles the create order request. A missing customer or dish aborts
// the whole creation before anything is written to the ledger.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, msgRequired)

		return
	}

	created, err := service.Create(r.Context(), req.CustomerID, req.toItems())
	if err != nil {
		var dishErr *order.DishNotFoundError
		switch {
		case errors.Is(err, customer.ErrNotFound):
			respond.Error(w, http.StatusNotFound, err.Error())
		case errors.As(err, &dishErr):
			respond.Error(w, http.StatusNotFound, dishErr.Error())
		default:
			respond.Error(w, http.StatusInternalServerError, err.Error())
			slog.Error("Error creating order", "error", err)
		}

		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

// Delete handles the delete order request.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, order.ErrNotFound.Error())

		return
	}

	if err := service.Delete(r.Context(), id); err != nil {
		respond.Error(w, http.StatusNotFound, err.Error())

		return
	}

	respond.NoContent(w)
}
