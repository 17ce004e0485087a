package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingType distinguishes the two service-delivery flows. The legacy system
// inferred this from a JSON blob in the notes column; it is now a first-class
// column (backfilled once by migration 000002).
type BookingType string

const (
	BookingTypeInSalon BookingType = "IN_SALON"
	BookingTypeAtHome  BookingType = "AT_HOME"
)

// BookingStatus represents the current stage of a booking's lifecycle
type BookingStatus string

const (
	BookingStatusPending                BookingStatus = "PENDING"
	BookingStatusAwaitingManager        BookingStatus = "AWAITING_MANAGER"
	BookingStatusAwaitingVendorResponse BookingStatus = "AWAITING_VENDOR_RESPONSE"
	BookingStatusAwaitingBeautician     BookingStatus = "AWAITING_BEAUTICIAN"
	BookingStatusAssigned               BookingStatus = "ASSIGNED"
	BookingStatusAccepted               BookingStatus = "ACCEPTED"
	BookingStatusConfirmed              BookingStatus = "CONFIRMED"
	BookingStatusInProgress             BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted              BookingStatus = "COMPLETED"
	BookingStatusRejected               BookingStatus = "REJECTED"
	BookingStatusCancelled              BookingStatus = "CANCELLED"
)

// AllBookingStatuses lists every valid booking status.
var AllBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAwaitingManager,
	BookingStatusAwaitingVendorResponse,
	BookingStatusAwaitingBeautician,
	BookingStatusAssigned,
	BookingStatusAccepted,
	BookingStatusConfirmed,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusRejected,
	BookingStatusCancelled,
}

// bookingTransitions is the booking-level state machine. A booking moves
// through manager routing, vendor response and beautician assignment for the
// salon flow, and through item-level ASSIGNED/ACCEPTED mirroring for the
// at-home flow. COMPLETED, REJECTED and CANCELLED are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending: {
		BookingStatusAwaitingManager,
		BookingStatusAwaitingVendorResponse,
		BookingStatusAssigned,
		BookingStatusConfirmed,
		BookingStatusRejected,
		BookingStatusCancelled,
	},
	BookingStatusAwaitingManager: {
		BookingStatusAwaitingVendorResponse,
		BookingStatusAssigned,
		BookingStatusConfirmed,
		BookingStatusRejected,
		BookingStatusCancelled,
	},
	BookingStatusAwaitingVendorResponse: {
		BookingStatusAwaitingBeautician,
		BookingStatusAwaitingManager,
		BookingStatusConfirmed,
		BookingStatusCancelled,
	},
	BookingStatusAwaitingBeautician: {
		BookingStatusConfirmed,
		BookingStatusCancelled,
	},
	BookingStatusAssigned: {
		BookingStatusAccepted,
		BookingStatusPending,
		BookingStatusCancelled,
	},
	BookingStatusAccepted: {
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	},
	BookingStatusConfirmed: {
		BookingStatusInProgress,
		BookingStatusCompleted,
		BookingStatusCancelled,
	},
	BookingStatusInProgress: {
		BookingStatusCompleted,
		BookingStatusCancelled,
	},
}

// IsValid reports whether s is a member of the defined status enum.
func (s BookingStatus) IsValid() bool {
	for _, known := range AllBookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusCompleted, BookingStatusRejected, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the state machine permits moving from s to
// target.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Status sets used as UPDATE preconditions by the assignment workflow. The
// workflow never trusts an in-memory status: writes are qualified by these
// sets and checked for affected rows.
var (
	// ManagerAssignableStatuses: states from which a manager may (re)route a
	// booking to a vendor.
	ManagerAssignableStatuses = []BookingStatus{
		BookingStatusPending,
		BookingStatusAwaitingManager,
		BookingStatusAwaitingVendorResponse,
	}

	// VendorRespondableStatuses: states in which the assigned vendor may
	// accept or reject.
	VendorRespondableStatuses = []BookingStatus{
		BookingStatusPending,
		BookingStatusAwaitingVendorResponse,
	}

	// BeauticianAssignableStatuses: states in which a beautician may be
	// attached by the vendor.
	BeauticianAssignableStatuses = []BookingStatus{
		BookingStatusAwaitingBeautician,
		BookingStatusAwaitingVendorResponse,
	}
)

// Booking is a customer's request for one or more services and/or products,
// delivered either at a vendor's salon or at the customer's home.
type Booking struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"customer_id"`
	VendorID             *uuid.UUID      `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	ManagerID            *uuid.UUID      `gorm:"type:uuid;index" json:"manager_id,omitempty"`
	EmployeeID           *uuid.UUID      `gorm:"type:uuid;index" json:"employee_id,omitempty"`
	BookingType          BookingType     `gorm:"type:varchar(20);not null;default:'IN_SALON';index" json:"booking_type"`
	Status               BookingStatus   `gorm:"type:varchar(30);not null;default:'PENDING';index" json:"status"`
	ScheduledDate        time.Time       `gorm:"not null;index" json:"scheduled_date"`
	ScheduledTime        string          `gorm:"type:varchar(10)" json:"scheduled_time"`
	Subtotal             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Discount             decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discount"`
	Tax                  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"tax"`
	Total                decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Notes                string          `gorm:"type:text" json:"notes,omitempty"`
	CancellationReason   string          `gorm:"type:text" json:"cancellation_reason,omitempty"`
	ManagerAssignedAt    *time.Time      `json:"manager_assigned_at,omitempty"`
	VendorRespondedAt    *time.Time      `json:"vendor_responded_at,omitempty"`
	BeauticianAssignedAt *time.Time      `json:"beautician_assigned_at,omitempty"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer User             `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Vendor   *Vendor          `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Manager  *User            `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Employee *Employee        `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Services []BookingService `gorm:"foreignKey:BookingID" json:"services,omitempty"`
	Products []BookingProduct `gorm:"foreignKey:BookingID" json:"products,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsAtHome checks whether the booking follows the at-home dispatch flow
func (b *Booking) IsAtHome() bool {
	return b.BookingType == BookingTypeAtHome
}
