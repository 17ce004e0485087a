package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BookingItemRequest struct {
	CatalogID uuid.UUID `json:"catalog_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"omitempty,min=1"`
}

type CreateBookingRequest struct {
	BookingType   string               `json:"booking_type" validate:"required,oneof=AT_HOME IN_SALON"`
	ScheduledDate string               `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	ScheduledTime string               `json:"scheduled_time"`
	Notes         string               `json:"notes"`
	Services      []BookingItemRequest `json:"services" validate:"dive"`
	Products      []BookingItemRequest `json:"products" validate:"dive"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type AssignVendorRequest struct {
	VendorID uuid.UUID `json:"vendorId" validate:"required"`
}

type AssignEmployeeRequest struct {
	EmployeeID uuid.UUID `json:"employeeId" validate:"required"`
}

// AssignAtHomeVendorsRequest routes an at-home booking's line items. At least
// one of the two vendor ids must be given.
type AssignAtHomeVendorsRequest struct {
	ServiceVendorID *uuid.UUID `json:"service_vendor_id"`
	ProductVendorID *uuid.UUID `json:"product_vendor_id"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// BeauticianSpec describes a beautician to create inline during assignment.
type BeauticianSpec struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	Experience     int    `json:"experience"`
	Specialization string `json:"specialization"`
}

// AssignBeauticianRequest carries either an existing employee id or an inline
// spec for a new one.
type AssignBeauticianRequest struct {
	EmployeeID *uuid.UUID      `json:"employeeId"`
	Beautician *BeauticianSpec `json:"beautician"`
}

// Response DTOs

type BookingItemResponse struct {
	ID               uuid.UUID       `json:"id"`
	CatalogID        uuid.UUID       `json:"catalog_id"`
	Name             string          `json:"name,omitempty"`
	Category         string          `json:"category,omitempty"`
	AssignedVendorID *uuid.UUID      `json:"assigned_vendor_id,omitempty"`
	Status           string          `json:"status"`
	Price            decimal.Decimal `json:"price"`
	Quantity         int             `json:"quantity"`
}

type BookingResponse struct {
	ID                 uuid.UUID             `json:"id"`
	CustomerID         uuid.UUID             `json:"customer_id"`
	CustomerName       string                `json:"customer_name,omitempty"`
	VendorID           *uuid.UUID            `json:"vendor_id,omitempty"`
	VendorShopName     string                `json:"vendor_shop_name,omitempty"`
	EmployeeID         *uuid.UUID            `json:"employee_id,omitempty"`
	EmployeeName       string                `json:"employee_name,omitempty"`
	BookingType        string                `json:"booking_type"`
	Status             string                `json:"status"`
	VendorStatus       string                `json:"vendor_status,omitempty"`
	ScheduledDate      time.Time             `json:"scheduled_date"`
	ScheduledTime      string                `json:"scheduled_time,omitempty"`
	Subtotal           decimal.Decimal       `json:"subtotal"`
	Discount           decimal.Decimal       `json:"discount"`
	Tax                decimal.Decimal       `json:"tax"`
	Total              decimal.Decimal       `json:"total"`
	Notes              string                `json:"notes,omitempty"`
	CancellationReason string                `json:"cancellation_reason,omitempty"`
	Services           []BookingItemResponse `json:"services,omitempty"`
	Products           []BookingItemResponse `json:"products,omitempty"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// BookingStatsResponse summarizes the manager dashboard counters.
type BookingStatsResponse struct {
	Total          int64 `json:"total"`
	AwaitingAction int64 `json:"awaiting_action"`
	Confirmed      int64 `json:"confirmed"`
	InProgress     int64 `json:"in_progress"`
	Completed      int64 `json:"completed"`
	Cancelled      int64 `json:"cancelled"`
}

type BookingEventResponse struct {
	ID        int64                  `json:"id"`
	BookingID uuid.UUID              `json:"booking_id"`
	Type      string                 `json:"type"`
	ActorID   *uuid.UUID             `json:"actor_id,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
