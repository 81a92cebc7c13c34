package customers

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
	"restaurante-api/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context) ([]customer.Customer, error)
	Get(ctx context.Context, id int64) (customer.Customer, error)
	Create(ctx context.Context, c customer.Customer) (customer.Customer, error)
	Update(ctx context.Context, id int64, c customer.Customer) (customer.Customer, error)
	Delete(ctx context.Context, id int64) error
}

const msgRequired = "Nome e telefone são obrigatórios"

// customerRequest is the body of create and update requests.
type customerRequest struct {
	Name    string `json:"nome"     validate:"required"`
	Phone   string `json:"telefone" validate:"required"`
	Address string `json:"endereco"`
}

// Validate validates the customer request.
func (r *customerRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts customerRequest to customer.Customer.
func (r *customerRequest) toModel() customer.Customer {
	return customer.Customer{
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// List handles the list customers request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	all, err := service.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		slog.Error("Error listing customers", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, all)
}

// Get handles the get customer request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, customer.ErrNotFound.Error())

		return
	}

	c, err := service.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, http.StatusNotFound, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, c)
}

// Create handles the create customer request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := customerRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding request body for create customer", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, msgRequired)

		return
	}

	created, err := service.Create(r.Context(), req.toModel())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		slog.Error("Error creating customer", "error", err)

		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

// Update handles the update customer request: a full replace of the record.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, customer.ErrNotFound.Error())

		return
	}

	if _, err := service.Get(r.Context(), id); err != nil {
		respond.Error(w, http.StatusNotFound, err.Error())

		return
	}

	req := customerRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding request body for update customer", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, msgRequired)

		return
	}

	updated, err := service.Update(r.Context(), id, req.toModel())
	if errors.Is(err, customer.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, err.Error())

		return
	}
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		slog.Error("Error updating customer", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, updated)
}

// Delete handles the delete customer request.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, customer.ErrNotFound.Error())

		return
	}

	if err := service.Delete(r.Context(), id); err != nil {
		respond.Error(w, http.StatusNotFound, err.Error())

		return
	}

	respond.NoContent(w)
}
