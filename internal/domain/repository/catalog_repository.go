package repository

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository is read/write access to the admin service and product
// catalogs. List operations return empty slices, never errors, for "no
// results".
type CatalogRepository interface {
	CreateService(db *gorm.DB, svc *entity.CatalogService) error
	CreateProduct(db *gorm.DB, prod *entity.CatalogProduct) error
	FindServiceByID(db *gorm.DB, id uuid.UUID) (*entity.CatalogService, error)
	FindProductByID(db *gorm.DB, id uuid.UUID) (*entity.CatalogProduct, error)
	FindServicesByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.CatalogService, error)
	FindProductsByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.CatalogProduct, error)
	FindActiveServices(db *gorm.DB) ([]entity.CatalogService, error)
	FindActiveProducts(db *gorm.DB) ([]entity.CatalogProduct, error)
}
