package repository

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendorOfferingRepository manages vendors' own service/product listings and
// backs the matching engine's candidate queries over them.
type VendorOfferingRepository interface {
	CreateService(db *gorm.DB, offering *entity.VendorService) error
	CreateProduct(db *gorm.DB, offering *entity.VendorProduct) error
	// Deletes are scoped to the owning vendor; zero rows means the offering
	// does not exist or belongs to someone else.
	DeleteServiceByVendor(db *gorm.DB, id, vendorID uuid.UUID) (int64, error)
	DeleteProductByVendor(db *gorm.DB, id, vendorID uuid.UUID) (int64, error)

	// Level-0 candidates: vendors directly offering one of the catalog ids.
	FindVendorIDsByCatalogServiceIDs(db *gorm.DB, catalogIDs []uuid.UUID) ([]uuid.UUID, error)
	FindVendorIDsByCatalogProductIDs(db *gorm.DB, catalogIDs []uuid.UUID) ([]uuid.UUID, error)
	// Level-1 candidates: vendors whose offering category text loosely
	// matches one of the given categories (case-insensitive substring).
	FindVendorIDsByServiceCategories(db *gorm.DB, categories []string) ([]uuid.UUID, error)
	FindVendorIDsByProductCategories(db *gorm.DB, categories []string) ([]uuid.UUID, error)

	// Inventory detail for the eligible-vendor listing.
	FindServicesByVendorIDs(db *gorm.DB, vendorIDs []uuid.UUID) ([]entity.VendorService, error)
	FindProductsByVendorIDs(db *gorm.DB, vendorIDs []uuid.UUID) ([]entity.VendorProduct, error)
}
