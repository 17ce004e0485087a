package repository

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingFilter narrows manager booking listings.
type BookingFilter struct {
	Status        entity.BookingStatus
	NotesContains string
	Page          int
	Limit         int
}

// VendorAssignment is the column set mutated when a manager routes a booking
// to a vendor.
type VendorAssignment struct {
	VendorID  uuid.UUID
	ManagerID uuid.UUID
}

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error)
	// FindForManager lists bookings for the manager dashboard, newest
	// scheduled first, with total count for pagination.
	FindForManager(db *gorm.DB, filter BookingFilter) ([]entity.Booking, int64, error)
	// FindActiveByVendorID lists a vendor's bookings in non-terminal statuses,
	// soonest scheduled first.
	FindActiveByVendorID(db *gorm.DB, vendorID uuid.UUID) ([]entity.Booking, error)
	// FindAtHome lists at-home bookings with line items, newest first.
	FindAtHome(db *gorm.DB) ([]entity.Booking, error)
	CountByStatuses(db *gorm.DB, statuses ...entity.BookingStatus) (int64, error)

	// Conditional transitions. Each UPDATE is qualified by the allowed
	// source-status set and reports affected rows so callers can distinguish
	// a missing booking from an invalid state.
	AssignVendor(db *gorm.DB, id uuid.UUID, assignment VendorAssignment) (int64, error)
	AcceptByVendor(db *gorm.DB, id, vendorID uuid.UUID) (int64, error)
	RejectByVendor(db *gorm.DB, id, vendorID uuid.UUID) (int64, error)
	AssignEmployee(db *gorm.DB, id, employeeID uuid.UUID, managerID *uuid.UUID, from []entity.BookingStatus) (int64, error)
	AssignEmployeeByVendor(db *gorm.DB, id, vendorID, employeeID uuid.UUID) (int64, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, from []entity.BookingStatus, to entity.BookingStatus) (int64, error)
	Cancel(db *gorm.DB, id uuid.UUID, reason string) (int64, error)
}
