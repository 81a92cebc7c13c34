package dishes

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"restaurante-api/internal/service/models/dish"
	"restaurante-api/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	List(ctx context.Context) ([]dish.Dish, error)
	Get(ctx context.Context, id int64) (dish.Dish, error)
	Create(ctx context.Context, d dish.Dish) (dish.Dish, error)
	Update(ctx context.Context, id int64, d dish.Dish) (dish.Dish, error)
	Delete(ctx context.Context, id int64) error
}

const msgRequired = "Nome e preço são obrigatórios"

// dishRequest is the body of create and update requests. required rejects the
// zero value, so an absent nome, an empty nome, an absent preco and preco 0
// all count as missing.
type dishRequest struct {
	Name        string  `json:"nome"         validate:"required"`
	Price       float64 `json:"preco"        validate:"required"`
	Category    string  `json:"categoria"`
	Ingredients string  `json:"ingredientes"`
}

// Validate validates the dish request.
func (r *dishRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts dishRequest to dish.Dish.
func (r *dishRequest) toModel() dish.Dish {
	return dish.Dish{
		Name:        r.Name,
		Price:       r.Price,
		Category:    r.Category,
		Ingredients: r.Ingredients,
	}
}

// parseID reads the id path parameter. A non-numeric id can never match a
// record, so callers treat a parse failure as not found.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// List handles the list dishes request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	all, err := service.List(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		slog.Error("Error listing dishes", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, all)
}

// Get handles the get dish request.
func Get(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, dish.ErrNotFound.Error())

		return
	}

	d, err := service.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, http.StatusNotFound, err.Error())

		return
	}

	respond.JSON(w, http.StatusOK, d)
}

// Create handles the create dish request.
func Create(w http.ResponseWriter, r *http.Request, service service) {
	req := dishRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding request body for create dish", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, msgRequired)

		return
	}

	created, err := service.Create(r.Context(), req.toModel())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		slog.Error("Error creating dish", "error", err)

		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

// Update handles the update dish request: a full replace of the record, never
// a partial merge.
func Update(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, dish.ErrNotFound.Error())

		return
	}

	// Missing id wins over a bad body: the record is looked up before the
	// fields are validated.
	if _, err := service.Get(r.Context(), id); err != nil {
		respond.Error(w, http.StatusNotFound, err.Error())

		return
	}

	req := dishRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding request body for update dish", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, msgRequired)

		return
	}

	updated, err := service.Update(r.Context(), id, req.toModel())
	if errors.Is(err, dish.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, err.Error())

		return
	}
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		slog.Error("Error updating dish", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, updated)
}

// Delete handles the delete dish request.
func Delete(w http.ResponseWriter, r *http.Request, service service) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusNotFound, dish.ErrNotFound.Error())

		return
	}

	if err := service.Delete(r.Context(), id); err != nil {
		respond.Error(w, http.StatusNotFound, err.Error())

		return
	}

	respond.NoContent(w)
}
