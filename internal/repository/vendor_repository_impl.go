package repository

import (
	"errors"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	domainRepo "github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vendorRepository struct{}

func NewVendorRepository() domainRepo.VendorRepository {
	return &vendorRepository{}
}

func (r *vendorRepository) Create(db *gorm.DB, vendor *entity.Vendor) error {
	return db.Create(vendor).Error
}

func (r *vendorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := db.Preload("User").Where("id = ?", id).First(&vendor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := db.Where("user_id = ?", userID).First(&vendor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindApprovedByID(db *gorm.DB, id uuid.UUID) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := db.Where("id = ? AND status = ?", id, entity.VendorStatusApproved).First(&vendor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindByStatus(db *gorm.DB, status entity.VendorStatus) ([]entity.Vendor, error) {
	var vendors []entity.Vendor
	err := db.Preload("User").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *vendorRepository) FindApprovedIDs(db *gorm.DB) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Model(&entity.Vendor{}).
		Where("status = ?", entity.VendorStatusApproved).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *vendorRepository) FindApprovedByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Vendor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var vendors []entity.Vendor
	err := db.Preload("User").
		Where("id IN ? AND status = ?", ids, entity.VendorStatusApproved).
		Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

// UpdateStatus transitions a vendor's approval state, skipping vendors already
// in the target state. Returns affected rows.
func (r *vendorRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.VendorStatus, reason string) (int64, error) {
	result := db.Model(&entity.Vendor{}).
		Where("id = ? AND status != ?", id, status).
		Updates(map[string]interface{}{
			"status":           status,
			"rejection_reason": reason,
		})
	return result.RowsAffected, result.Error
}
