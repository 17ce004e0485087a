package repository

import (
	"errors"
	"time"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	domainRepo "github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Customer").
		Preload("Vendor").
		Preload("Manager").
		Preload("Employee").
		Preload("Services.CatalogService").
		Preload("Products.CatalogProduct").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Vendor").
		Preload("Employee").
		Preload("Services.CatalogService").
		Preload("Products.CatalogProduct").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindForManager(db *gorm.DB, filter domainRepo.BookingFilter) ([]entity.Booking, int64, error) {
	query := db.Model(&entity.Booking{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.NotesContains != "" {
		query = query.Where("LOWER(notes) LIKE ?", "%"+toLower(filter.NotesContains)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var bookings []entity.Booking
	err := query.Preload("Customer").
		Preload("Vendor.User").
		Preload("Manager").
		Preload("Employee").
		Preload("Services.CatalogService").
		Preload("Products.CatalogProduct").
		Order("scheduled_date DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) FindActiveByVendorID(db *gorm.DB, vendorID uuid.UUID) ([]entity.Booking, error) {
	active := []entity.BookingStatus{
		entity.BookingStatusPending,
		entity.BookingStatusAwaitingManager,
		entity.BookingStatusAwaitingVendorResponse,
		entity.BookingStatusAwaitingBeautician,
		entity.BookingStatusConfirmed,
		entity.BookingStatusInProgress,
	}

	var bookings []entity.Booking
	err := db.Preload("Customer").
		Preload("Manager").
		Preload("Employee").
		Preload("Services.CatalogService").
		Preload("Products.CatalogProduct").
		Where("vendor_id = ? AND status IN ?", vendorID, active).
		Order("scheduled_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindAtHome(db *gorm.DB) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Customer").
		Preload("Services.CatalogService").
		Preload("Products.CatalogProduct").
		Where("booking_type = ?", entity.BookingTypeAtHome).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) CountByStatuses(db *gorm.DB, statuses ...entity.BookingStatus) (int64, error) {
	query := db.Model(&entity.Booking{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// AssignVendor routes a booking to a vendor ONLY if it is still in a
// manager-assignable state. Returns affected rows: 0 means the booking is
// missing or in a non-assignable state (caller disambiguates).
func (r *bookingRepository) AssignVendor(db *gorm.DB, id uuid.UUID, assignment domainRepo.VendorAssignment) (int64, error) {
	now := time.Now().UTC()
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status IN ?", id, entity.ManagerAssignableStatuses).
		Updates(map[string]interface{}{
			"vendor_id":              assignment.VendorID,
			"manager_id":             assignment.ManagerID,
			"manager_assigned_at":    now,
			"vendor_responded_at":    nil,
			"beautician_assigned_at": nil,
			"status":                 entity.BookingStatusAwaitingVendorResponse,
		})
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) AcceptByVendor(db *gorm.DB, id, vendorID uuid.UUID) (int64, error) {
	now := time.Now().UTC()
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND vendor_id = ? AND status IN ?", id, vendorID, entity.VendorRespondableStatuses).
		Updates(map[string]interface{}{
			"status":                 entity.BookingStatusAwaitingBeautician,
			"employee_id":            nil,
			"vendor_responded_at":    now,
			"beautician_assigned_at": nil,
		})
	return result.RowsAffected, result.Error
}

// RejectByVendor reverts the booking to the manager queue, clearing the
// vendor and manager references so it can be re-routed.
func (r *bookingRepository) RejectByVendor(db *gorm.DB, id, vendorID uuid.UUID) (int64, error) {
	now := time.Now().UTC()
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND vendor_id = ? AND status IN ?", id, vendorID, entity.VendorRespondableStatuses).
		Updates(map[string]interface{}{
			"status":                 entity.BookingStatusAwaitingManager,
			"vendor_id":              nil,
			"manager_id":             nil,
			"manager_assigned_at":    nil,
			"vendor_responded_at":    now,
			"beautician_assigned_at": nil,
		})
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) AssignEmployee(db *gorm.DB, id, employeeID uuid.UUID, managerID *uuid.UUID, from []entity.BookingStatus) (int64, error) {
	now := time.Now().UTC()
	updates := map[string]interface{}{
		"employee_id":            employeeID,
		"status":                 entity.BookingStatusConfirmed,
		"beautician_assigned_at": now,
	}
	if managerID != nil {
		updates["manager_id"] = *managerID
		updates["manager_assigned_at"] = now
	}
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) AssignEmployeeByVendor(db *gorm.DB, id, vendorID, employeeID uuid.UUID) (int64, error) {
	now := time.Now().UTC()
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND vendor_id = ? AND status IN ?", id, vendorID, entity.BeauticianAssignableStatuses).
		Updates(map[string]interface{}{
			"employee_id":            employeeID,
			"status":                 entity.BookingStatusConfirmed,
			"beautician_assigned_at": now,
		})
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, from []entity.BookingStatus, to entity.BookingStatus) (int64, error) {
	query := db.Model(&entity.Booking{}).Where("id = ?", id)
	if len(from) > 0 {
		query = query.Where("status IN ?", from)
	}
	result := query.Update("status", to)
	return result.RowsAffected, result.Error
}

// Cancel terminates a booking unless it already reached a terminal state.
func (r *bookingRepository) Cancel(db *gorm.DB, id uuid.UUID, reason string) (int64, error) {
	terminal := []entity.BookingStatus{
		entity.BookingStatusCompleted,
		entity.BookingStatusRejected,
		entity.BookingStatusCancelled,
	}
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status NOT IN ?", id, terminal).
		Updates(map[string]interface{}{
			"status":              entity.BookingStatusCancelled,
			"cancellation_reason": reason,
		})
	return result.RowsAffected, result.Error
}
