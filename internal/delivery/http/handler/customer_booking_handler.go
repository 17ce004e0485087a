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

type CustomerBookingHandler struct {
	customerUsecase usecase.CustomerBookingUsecase
	validator       *validator.CustomValidator
}

func NewCustomerBookingHandler(customerUsecase usecase.CustomerBookingUsecase, validator *validator.CustomValidator) *CustomerBookingHandler {
	return &CustomerBookingHandler{
		customerUsecase: customerUsecase,
		validator:       validator,
	}
}

func (h *CustomerBookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.customerUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmptyBooking:
			response.BadRequest(w, "Booking must contain at least one service or product")
		case usecase.ErrInvalidDateFormat:
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		case usecase.ErrCatalogItemNotFound:
			response.NotFound(w, "Catalog item not found or inactive")
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *CustomerBookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.customerUsecase.GetMyBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *CustomerBookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	var req dto.CancelBookingRequest
	json.NewDecoder(r.Body).Decode(&req)

	if err := h.customerUsecase.CancelBooking(r.Context(), bookingID, &req); err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking does not belong to you")
		case usecase.ErrInvalidState:
			response.Conflict(w, "Booking has already reached a terminal state")
		default:
			response.InternalServerError(w, "Failed to cancel booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", nil)
}
