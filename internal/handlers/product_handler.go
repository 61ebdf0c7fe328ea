package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/algonquin-pet-store/product-service/internal/models"
)

// productLister is the subset of the product service the handler needs
type productLister interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service productLister
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service productLister, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}
