package repository

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingItemRepository manages the per-item vendor assignments used by the
// at-home flow. Items are only ever re-assigned, never deleted.
type BookingItemRepository interface {
	CreateServices(db *gorm.DB, items []entity.BookingService) error
	CreateProducts(db *gorm.DB, items []entity.BookingProduct) error
	FindServicesByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.BookingService, error)
	FindProductsByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.BookingProduct, error)
	// FindBookingIDsByAssignedVendor returns ids of bookings holding at least
	// one non-rejected item assigned to the vendor, across both item kinds.
	FindBookingIDsByAssignedVendor(db *gorm.DB, vendorID uuid.UUID) ([]uuid.UUID, error)

	// AssignServiceVendor / AssignProductVendor move a booking's items to
	// ASSIGNED under the given vendor.
	AssignServiceVendor(db *gorm.DB, bookingID, vendorID uuid.UUID) (int64, error)
	AssignProductVendor(db *gorm.DB, bookingID, vendorID uuid.UUID) (int64, error)
	// AcceptByVendor moves the vendor's ASSIGNED items on the booking to
	// ACCEPTED, returning affected rows across both kinds.
	AcceptByVendor(db *gorm.DB, bookingID, vendorID uuid.UUID) (int64, error)
	// ReleaseByVendor clears the vendor from its items on the booking and
	// resets them to PENDING.
	ReleaseByVendor(db *gorm.DB, bookingID, vendorID uuid.UUID) (int64, error)
}
