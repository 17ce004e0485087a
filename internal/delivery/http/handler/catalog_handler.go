package handler

import (
	"net/http"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/usecase"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/pkg/response"
)

// CatalogHandler serves the public, read-only view of the master catalogs.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.ListServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUsecase.ListProducts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get products")
		return
	}

	response.Success(w, http.StatusOK, "Products retrieved successfully", products)
}
