package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/dcastano/gestion-inventario/models"
)

// ProductResponse is the wire representation of a product record.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	DateAdded   time.Time `json:"dateAdded"`
}

// ProductRequest is the JSON body accepted by create and update.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type ProductProvider interface {
	GetAllProducts() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id string, fields models.ProductFields) (*models.Product, error)
	DeleteProduct(id string) error
}

type InventoryHandler struct {
	repo ProductProvider
}

func NewInventoryHandler(r ProductProvider) *InventoryHandler {
	return &InventoryHandler{
		repo: r,
	}
}

// Register mounts the inventory routes.
func (h *InventoryHandler) Register(r chi.Router) {
	r.Route("/api/inventory", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/{id}", h.HandleGet)
		r.Put("/{id}", h.HandleUpdate)
		r.Delete("/{id}", h.HandleDelete)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"message": message})
}

func toResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Quantity:    p.Quantity,
		DateAdded:   p.DateAdded,
	}
}

func (h *InventoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetAllProducts()
	if err != nil {
		zap.S().Errorf("error al obtener los productos: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error al obtener los productos.")
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *InventoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Cuerpo JSON inválido.")
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		Quantity:    req.Quantity,
	}

	// Validation failures surface as a generic store failure, the way the
	// operation contract defines them.
	if err := h.repo.CreateProduct(product); err != nil {
		zap.S().Errorf("error al crear el producto: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Error al crear el producto.")
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(*product))
}

func (h *InventoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeMessage(w, http.StatusNotFound, "Producto no encontrado.")
			return
		}
		zap.S().Errorf("error al obtener el producto %s: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, "Error al obtener el producto.")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(*product))
}

func (h *InventoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Cuerpo JSON inválido.")
		return
	}

	fields := models.ProductFields{
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		Quantity:    req.Quantity,
	}

	product, err := h.repo.UpdateProduct(id, fields)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeMessage(w, http.StatusNotFound, "Producto no encontrado.")
			return
		}
		zap.S().Errorf("error al actualizar el producto %s: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, "Errror al actualizar el producto.")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(*product))
}

func (h *InventoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.DeleteProduct(id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeMessage(w, http.StatusNotFound, "Producto no encontrado.")
			return
		}
		zap.S().Errorf("error al eliminar el producto %s: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, "Error al eliminar el producto.")
		return
	}

	writeMessage(w, http.StatusOK, "Producto eliminado correctamente.")
}
