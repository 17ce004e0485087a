package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/usecase"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/pkg/response"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VendorOfferingHandler struct {
	offeringUsecase usecase.VendorOfferingUsecase
	validator       *validator.CustomValidator
}

func NewVendorOfferingHandler(offeringUsecase usecase.VendorOfferingUsecase, validator *validator.CustomValidator) *VendorOfferingHandler {
	return &VendorOfferingHandler{
		offeringUsecase: offeringUsecase,
		validator:       validator,
	}
}

func (h *VendorOfferingHandler) ListOfferings(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.offeringUsecase.ListOfferings(r.Context())
	if err != nil {
		h.writeOfferingError(w, err, "Failed to get offerings")
		return
	}

	response.Success(w, http.StatusOK, "Offerings retrieved successfully", offerings)
}

func (h *VendorOfferingHandler) AddService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVendorServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	offering, err := h.offeringUsecase.AddService(r.Context(), &req)
	if err != nil {
		h.writeOfferingError(w, err, "Failed to add service offering")
		return
	}

	response.Success(w, http.StatusCreated, "Service offering added successfully", offering)
}

func (h *VendorOfferingHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVendorProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	offering, err := h.offeringUsecase.AddProduct(r.Context(), &req)
	if err != nil {
		h.writeOfferingError(w, err, "Failed to add product offering")
		return
	}

	response.Success(w, http.StatusCreated, "Product offering added successfully", offering)
}

func (h *VendorOfferingHandler) RemoveService(w http.ResponseWriter, r *http.Request) {
	offeringID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid offering ID")
		return
	}

	if err := h.offeringUsecase.RemoveService(r.Context(), offeringID); err != nil {
		h.writeOfferingError(w, err, "Failed to remove service offering")
		return
	}

	response.Success(w, http.StatusOK, "Service offering removed", nil)
}

func (h *VendorOfferingHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	offeringID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid offering ID")
		return
	}

	if err := h.offeringUsecase.RemoveProduct(r.Context(), offeringID); err != nil {
		h.writeOfferingError(w, err, "Failed to remove product offering")
		return
	}

	response.Success(w, http.StatusOK, "Product offering removed", nil)
}

func (h *VendorOfferingHandler) writeOfferingError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrVendorProfileNotFound:
		response.NotFound(w, "Vendor profile not found")
	case usecase.ErrVendorNotApproved:
		response.Forbidden(w, "Vendor is not approved")
	case usecase.ErrCatalogItemNotFound:
		response.NotFound(w, "Catalog item not found or inactive")
	case usecase.ErrOfferingNotFound:
		response.NotFound(w, "Offering not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
