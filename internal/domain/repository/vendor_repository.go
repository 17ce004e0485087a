package repository

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorRepository interface {
	Create(db *gorm.DB, vendor *entity.Vendor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Vendor, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Vendor, error)
	// FindApprovedByID resolves a vendor only if its status is APPROVED.
	FindApprovedByID(db *gorm.DB, id uuid.UUID) (*entity.Vendor, error)
	FindByStatus(db *gorm.DB, status entity.VendorStatus) ([]entity.Vendor, error)
	// FindApprovedIDs returns the ids of every APPROVED vendor.
	FindApprovedIDs(db *gorm.DB) ([]uuid.UUID, error)
	// FindApprovedByIDs returns vendor details (with owning user) for the
	// given ids, filtered to APPROVED.
	FindApprovedByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Vendor, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.VendorStatus, reason string) (int64, error)
}
