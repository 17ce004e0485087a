package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/usecase"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/pkg/response"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ManagerBookingHandler struct {
	managerUsecase usecase.ManagerBookingUsecase
	atHomeUsecase  usecase.AtHomeAssignmentUsecase
	validator      *validator.CustomValidator
}

func NewManagerBookingHandler(
	managerUsecase usecase.ManagerBookingUsecase,
	atHomeUsecase usecase.AtHomeAssignmentUsecase,
	validator *validator.CustomValidator,
) *ManagerBookingHandler {
	return &ManagerBookingHandler{
		managerUsecase: managerUsecase,
		atHomeUsecase:  atHomeUsecase,
		validator:      validator,
	}
}

// ListBookings lists bookings for the manager dashboard with status filter,
// notes search and pagination.
func (h *ManagerBookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.BookingFilter{
		NotesContains: query.Get("search"),
	}
	if status := query.Get("status"); status != "" {
		bookingStatus := entity.BookingStatus(status)
		if !bookingStatus.IsValid() {
			response.BadRequest(w, "Invalid booking status")
			return
		}
		filter.Status = bookingStatus
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	bookings, total, err := h.managerUsecase.ListBookings(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	response.SuccessWithMeta(w, http.StatusOK, "Bookings retrieved successfully", bookings, &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

func (h *ManagerBookingHandler) GetBookingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.managerUsecase.GetBookingStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get booking stats")
		return
	}

	response.Success(w, http.StatusOK, "Booking stats retrieved successfully", stats)
}

func (h *ManagerBookingHandler) GetBookingEvents(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	events, err := h.managerUsecase.GetBookingEvents(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		default:
			response.InternalServerError(w, "Failed to get booking events")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking events retrieved successfully", events)
}

// AssignVendor routes a booking to an approved vendor.
func (h *ManagerBookingHandler) AssignVendor(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.AssignVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.managerUsecase.AssignVendor(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVendorNotFound:
			response.NotFound(w, "Vendor not found or not approved")
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrInvalidState:
			response.Conflict(w, "Booking is not in an assignable state")
		default:
			response.InternalServerError(w, "Failed to assign vendor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vendor assigned successfully", booking)
}

// AssignEmployee attaches a beautician directly (in-salon shortcut).
func (h *ManagerBookingHandler) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.AssignEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.managerUsecase.AssignEmployee(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Employee not found or not active")
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrInvalidState:
			response.Conflict(w, "Booking is not in an assignable state")
		default:
			response.InternalServerError(w, "Failed to assign employee")
		}
		return
	}

	response.Success(w, http.StatusOK, "Employee assigned successfully", booking)
}

func (h *ManagerBookingHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var vendorID *uuid.UUID
	if raw := r.URL.Query().Get("vendor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(w, "Invalid vendor ID")
			return
		}
		vendorID = &id
	}

	employees, err := h.managerUsecase.ListEmployees(r.Context(), vendorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get employees")
		return
	}

	response.Success(w, http.StatusOK, "Employees retrieved successfully", employees)
}

func (h *ManagerBookingHandler) ListAtHomeBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.atHomeUsecase.ListAtHomeBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get at-home bookings")
		return
	}

	response.Success(w, http.StatusOK, "At-home bookings retrieved successfully", bookings)
}

// EligibleVendors returns matching-engine candidates for an at-home booking.
func (h *ManagerBookingHandler) EligibleVendors(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	result, err := h.atHomeUsecase.EligibleVendors(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrNotAtHomeBooking:
			response.BadRequest(w, "Booking is not an at-home booking")
		default:
			response.InternalServerError(w, "Failed to get eligible vendors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Eligible vendors retrieved successfully", result)
}

// AssignAtHomeVendors routes an at-home booking's line items to vendors.
func (h *ManagerBookingHandler) AssignAtHomeVendors(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.AssignAtHomeVendorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	booking, err := h.atHomeUsecase.AssignVendors(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrNoVendorGiven:
			response.BadRequest(w, "At least one of service_vendor_id or product_vendor_id is required")
		case usecase.ErrNoItemsToAssign:
			response.BadRequest(w, "Booking has no assignable items of the requested kind")
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrNotAtHomeBooking:
			response.BadRequest(w, "Booking is not an at-home booking")
		case usecase.ErrVendorNotFound:
			response.NotFound(w, "Vendor not found or not approved")
		case usecase.ErrInvalidState:
			response.Conflict(w, "Booking is not in an assignable state")
		default:
			response.InternalServerError(w, "Failed to assign vendors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vendors assigned successfully", booking)
}
