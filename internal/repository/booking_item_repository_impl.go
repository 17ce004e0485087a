package repository

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	domainRepo "github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingItemRepository struct{}

func NewBookingItemRepository() domainRepo.BookingItemRepository {
	return &bookingItemRepository{}
}

func (r *bookingItemRepository) CreateServices(db *gorm.DB, items []entity.BookingService) error {
	if len(items) == 0 {
		return nil
	}
	return db.Create(&items).Error
}

func (r *bookingItemRepository) CreateProducts(db *gorm.DB, items []entity.BookingProduct) error {
	if len(items) == 0 {
		return nil
	}
	return db.Create(&items).Error
}

func (r *bookingItemRepository) FindServicesByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.BookingService, error) {
	var items []entity.BookingService
	err := db.Preload("CatalogService").
		Where("booking_id = ?", bookingID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *bookingItemRepository) FindProductsByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.BookingProduct, error) {
	var items []entity.BookingProduct
	err := db.Preload("CatalogProduct").
		Where("booking_id = ?", bookingID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *bookingItemRepository) FindBookingIDsByAssignedVendor(db *gorm.DB, vendorID uuid.UUID) ([]uuid.UUID, error) {
	var serviceIDs []uuid.UUID
	err := db.Model(&entity.BookingService{}).
		Where("assigned_vendor_id = ? AND status != ?", vendorID, entity.ItemStatusRejected).
		Distinct().
		Pluck("booking_id", &serviceIDs).Error
	if err != nil {
		return nil, err
	}

	var productIDs []uuid.UUID
	err = db.Model(&entity.BookingProduct{}).
		Where("assigned_vendor_id = ? AND status != ?", vendorID, entity.ItemStatusRejected).
		Distinct().
		Pluck("booking_id", &productIDs).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(serviceIDs)+len(productIDs))
	var ids []uuid.UUID
	for _, id := range append(serviceIDs, productIDs...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *bookingItemRepository) AssignServiceVendor(db *gorm.DB, bookingID, vendorID uuid.UUID) (int64, error) {
	result := db.Model(&entity.BookingService{}).
		Where("booking_id = ?", bookingID).
		Updates(map[string]interface{}{
			"assigned_vendor_id": vendorID,
			"status":             entity.ItemStatusAssigned,
		})
	return result.RowsAffected, result.Error
}

func (r *bookingItemRepository) AssignProductVendor(db *gorm.DB, bookingID, vendorID uuid.UUID) (int64, error) {
	result := db.Model(&entity.BookingProduct{}).
		Where("booking_id = ?", bookingID).
		Updates(map[string]interface{}{
			"assigned_vendor_id": vendorID,
			"status":             entity.ItemStatusAssigned,
		})
	return result.RowsAffected, result.Error
}

func (r *bookingItemRepository) AcceptByVendor(db *gorm.DB, bookingID, vendorID uuid.UUID) (int64, error) {
	services := db.Model(&entity.BookingService{}).
		Where("booking_id = ? AND assigned_vendor_id = ? AND status = ?", bookingID, vendorID, entity.ItemStatusAssigned).
		Update("status", entity.ItemStatusAccepted)
	if services.Error != nil {
		return 0, services.Error
	}

	products := db.Model(&entity.BookingProduct{}).
		Where("booking_id = ? AND assigned_vendor_id = ? AND status = ?", bookingID, vendorID, entity.ItemStatusAssigned).
		Update("status", entity.ItemStatusAccepted)
	if products.Error != nil {
		return 0, products.Error
	}

	return services.RowsAffected + products.RowsAffected, nil
}

func (r *bookingItemRepository) ReleaseByVendor(db *gorm.DB, bookingID, vendorID uuid.UUID) (int64, error) {
	reset := map[string]interface{}{
		"assigned_vendor_id": nil,
		"status":             entity.ItemStatusPending,
	}

	services := db.Model(&entity.BookingService{}).
		Where("booking_id = ? AND assigned_vendor_id = ?", bookingID, vendorID).
		Updates(reset)
	if services.Error != nil {
		return 0, services.Error
	}

	products := db.Model(&entity.BookingProduct{}).
		Where("booking_id = ? AND assigned_vendor_id = ?", bookingID, vendorID).
		Updates(reset)
	if products.Error != nil {
		return 0, products.Error
	}

	return services.RowsAffected + products.RowsAffected, nil
}
