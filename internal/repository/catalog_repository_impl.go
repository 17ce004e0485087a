package repository

import (
	"errors"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	domainRepo "github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type catalogRepository struct{}

func NewCatalogRepository() domainRepo.CatalogRepository {
	return &catalogRepository{}
}

func (r *catalogRepository) CreateService(db *gorm.DB, svc *entity.CatalogService) error {
	return db.Create(svc).Error
}

func (r *catalogRepository) CreateProduct(db *gorm.DB, prod *entity.CatalogProduct) error {
	return db.Create(prod).Error
}

func (r *catalogRepository) FindServiceByID(db *gorm.DB, id uuid.UUID) (*entity.CatalogService, error) {
	var svc entity.CatalogService
	err := db.Where("id = ?", id).First(&svc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

func (r *catalogRepository) FindProductByID(db *gorm.DB, id uuid.UUID) (*entity.CatalogProduct, error) {
	var prod entity.CatalogProduct
	err := db.Where("id = ?", id).First(&prod).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prod, nil
}

func (r *catalogRepository) FindServicesByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.CatalogService, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var services []entity.CatalogService
	err := db.Where("id IN ?", ids).Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *catalogRepository) FindProductsByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.CatalogProduct, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []entity.CatalogProduct
	err := db.Where("id IN ?", ids).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *catalogRepository) FindActiveServices(db *gorm.DB) ([]entity.CatalogService, error) {
	var services []entity.CatalogService
	err := db.Where("is_active = ?", true).Order("category, name").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *catalogRepository) FindActiveProducts(db *gorm.DB) ([]entity.CatalogProduct, error) {
	var products []entity.CatalogProduct
	err := db.Where("is_active = ?", true).Order("category, name").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
