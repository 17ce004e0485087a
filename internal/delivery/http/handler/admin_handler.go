package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/usecase"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/pkg/response"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// AdminHandler covers vendor approval and catalog curation.
type AdminHandler struct {
	directoryUsecase usecase.VendorDirectoryUsecase
	catalogUsecase   usecase.CatalogUsecase
	validator        *validator.CustomValidator
}

func NewAdminHandler(
	directoryUsecase usecase.VendorDirectoryUsecase,
	catalogUsecase usecase.CatalogUsecase,
	validator *validator.CustomValidator,
) *AdminHandler {
	return &AdminHandler{
		directoryUsecase: directoryUsecase,
		catalogUsecase:   catalogUsecase,
		validator:        validator,
	}
}

func (h *AdminHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	status := entity.VendorStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = entity.VendorStatusPendingApproval
	}
	switch status {
	case entity.VendorStatusPendingApproval, entity.VendorStatusApproved, entity.VendorStatusRejected:
	default:
		response.BadRequest(w, "Invalid vendor status")
		return
	}

	vendors, err := h.directoryUsecase.ListVendors(r.Context(), status)
	if err != nil {
		response.InternalServerError(w, "Failed to get vendors")
		return
	}

	response.Success(w, http.StatusOK, "Vendors retrieved successfully", vendors)
}

func (h *AdminHandler) ApproveVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid vendor ID")
		return
	}

	vendor, err := h.directoryUsecase.ApproveVendor(r.Context(), vendorID)
	if err != nil {
		switch err {
		case usecase.ErrVendorNotFound:
			response.NotFound(w, "Vendor not found")
		default:
			response.InternalServerError(w, "Failed to approve vendor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vendor approved successfully", vendor)
}

func (h *AdminHandler) RejectVendor(w http.ResponseWriter, r *http.Request) {
	vendorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid vendor ID")
		return
	}

	var req dto.RejectVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vendor, err := h.directoryUsecase.RejectVendor(r.Context(), vendorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVendorNotFound:
			response.NotFound(w, "Vendor not found")
		default:
			response.InternalServerError(w, "Failed to reject vendor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vendor rejected", vendor)
}

func (h *AdminHandler) CreateCatalogService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCatalogServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	svc, err := h.catalogUsecase.CreateService(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create catalog service")
		return
	}

	response.Success(w, http.StatusCreated, "Catalog service created successfully", svc)
}

func (h *AdminHandler) CreateCatalogProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCatalogProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prod, err := h.catalogUsecase.CreateProduct(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create catalog product")
		return
	}

	response.Success(w, http.StatusCreated, "Catalog product created successfully", prod)
}
