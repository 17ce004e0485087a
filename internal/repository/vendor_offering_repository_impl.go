package repository

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	domainRepo "github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vendorOfferingRepository struct{}

func NewVendorOfferingRepository() domainRepo.VendorOfferingRepository {
	return &vendorOfferingRepository{}
}

func (r *vendorOfferingRepository) CreateService(db *gorm.DB, offering *entity.VendorService) error {
	return db.Create(offering).Error
}

func (r *vendorOfferingRepository) CreateProduct(db *gorm.DB, offering *entity.VendorProduct) error {
	return db.Create(offering).Error
}

func (r *vendorOfferingRepository) DeleteServiceByVendor(db *gorm.DB, id, vendorID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND vendor_id = ?", id, vendorID).Delete(&entity.VendorService{})
	return result.RowsAffected, result.Error
}

func (r *vendorOfferingRepository) DeleteProductByVendor(db *gorm.DB, id, vendorID uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND vendor_id = ?", id, vendorID).Delete(&entity.VendorProduct{})
	return result.RowsAffected, result.Error
}

func (r *vendorOfferingRepository) FindVendorIDsByCatalogServiceIDs(db *gorm.DB, catalogIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(catalogIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := db.Model(&entity.VendorService{}).
		Where("catalog_service_id IN ?", catalogIDs).
		Distinct().
		Pluck("vendor_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *vendorOfferingRepository) FindVendorIDsByCatalogProductIDs(db *gorm.DB, catalogIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(catalogIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := db.Model(&entity.VendorProduct{}).
		Where("catalog_product_id IN ?", catalogIDs).
		Distinct().
		Pluck("vendor_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// categoryCondition builds the loose, case-insensitive category predicate used
// by Level-1 matching: any offering whose category text contains one of the
// requested categories as a substring.
func categoryCondition(db *gorm.DB, categories []string) *gorm.DB {
	condition := db.Session(&gorm.Session{NewDB: true})
	for i, category := range categories {
		pattern := "%" + toLower(category) + "%"
		if i == 0 {
			condition = condition.Where("LOWER(category) LIKE ?", pattern)
		} else {
			condition = condition.Or("LOWER(category) LIKE ?", pattern)
		}
	}
	return condition
}

func (r *vendorOfferingRepository) FindVendorIDsByServiceCategories(db *gorm.DB, categories []string) ([]uuid.UUID, error) {
	if len(categories) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := db.Model(&entity.VendorService{}).
		Where(categoryCondition(db, categories)).
		Distinct().
		Pluck("vendor_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *vendorOfferingRepository) FindVendorIDsByProductCategories(db *gorm.DB, categories []string) ([]uuid.UUID, error) {
	if len(categories) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := db.Model(&entity.VendorProduct{}).
		Where(categoryCondition(db, categories)).
		Distinct().
		Pluck("vendor_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *vendorOfferingRepository) FindServicesByVendorIDs(db *gorm.DB, vendorIDs []uuid.UUID) ([]entity.VendorService, error) {
	if len(vendorIDs) == 0 {
		return nil, nil
	}
	var offerings []entity.VendorService
	err := db.Preload("CatalogService").
		Where("vendor_id IN ?", vendorIDs).
		Find(&offerings).Error
	if err != nil {
		return nil, err
	}
	return offerings, nil
}

func (r *vendorOfferingRepository) FindProductsByVendorIDs(db *gorm.DB, vendorIDs []uuid.UUID) ([]entity.VendorProduct, error) {
	if len(vendorIDs) == 0 {
		return nil, nil
	}
	var offerings []entity.VendorProduct
	err := db.Preload("CatalogProduct").
		Where("vendor_id IN ?", vendorIDs).
		Find(&offerings).Error
	if err != nil {
		return nil, err
	}
	return offerings, nil
}
