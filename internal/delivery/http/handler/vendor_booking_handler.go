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

type VendorBookingHandler struct {
	vendorUsecase usecase.VendorBookingUsecase
	validator     *validator.CustomValidator
}

func NewVendorBookingHandler(vendorUsecase usecase.VendorBookingUsecase, validator *validator.CustomValidator) *VendorBookingHandler {
	return &VendorBookingHandler{
		vendorUsecase: vendorUsecase,
		validator:     validator,
	}
}

func (h *VendorBookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.vendorUsecase.ListBookings(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrVendorProfileNotFound:
			response.NotFound(w, "Vendor profile not found")
		default:
			response.InternalServerError(w, "Failed to get bookings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *VendorBookingHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	booking, err := h.vendorUsecase.ApproveBooking(r.Context(), bookingID)
	if err != nil {
		h.writeWorkflowError(w, err, "Failed to approve booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking approved successfully", booking)
}

func (h *VendorBookingHandler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.RejectBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.vendorUsecase.RejectBooking(r.Context(), bookingID, &req)
	if err != nil {
		h.writeWorkflowError(w, err, "Failed to reject booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking rejected", booking)
}

func (h *VendorBookingHandler) AssignBeautician(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.AssignBeauticianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if req.Beautician != nil {
		if err := h.validator.Validate(req.Beautician); err != nil {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}
	}

	booking, err := h.vendorUsecase.AssignBeautician(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBeauticianRequired:
			response.BadRequest(w, "An employeeId or a beautician spec is required")
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Employee not found or not active")
		default:
			h.writeWorkflowError(w, err, "Failed to assign beautician")
		}
		return
	}

	response.Success(w, http.StatusOK, "Beautician assigned successfully", booking)
}

func (h *VendorBookingHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.vendorUsecase.ListAssignments(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrVendorProfileNotFound:
			response.NotFound(w, "Vendor profile not found")
		default:
			response.InternalServerError(w, "Failed to get assignments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Assignments retrieved successfully", assignments)
}

func (h *VendorBookingHandler) AcceptAssignment(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	booking, err := h.vendorUsecase.AcceptAssignment(r.Context(), bookingID)
	if err != nil {
		h.writeWorkflowError(w, err, "Failed to accept assignment")
		return
	}

	response.Success(w, http.StatusOK, "Assignment accepted successfully", booking)
}

func (h *VendorBookingHandler) RejectAssignment(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.RejectBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.vendorUsecase.RejectAssignment(r.Context(), bookingID, &req); err != nil {
		h.writeWorkflowError(w, err, "Failed to reject assignment")
		return
	}

	response.Success(w, http.StatusOK, "Assignment rejected", nil)
}

// writeWorkflowError maps the shared workflow sentinels to HTTP statuses.
func (h *VendorBookingHandler) writeWorkflowError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrVendorProfileNotFound:
		response.NotFound(w, "Vendor profile not found")
	case usecase.ErrBookingNotFound:
		response.NotFound(w, "Booking not found")
	case usecase.ErrInvalidState:
		response.Conflict(w, "Booking is not in a valid state for this action")
	default:
		response.InternalServerError(w, fallback)
	}
}
