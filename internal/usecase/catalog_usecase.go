package usecase

import (
	"context"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/converter"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogUsecase maintains the admin-curated master catalogs that vendors
// attach their offerings to and customers book from.
type CatalogUsecase interface {
	CreateService(ctx context.Context, req *dto.CreateCatalogServiceRequest) (*dto.CatalogServiceResponse, error)
	CreateProduct(ctx context.Context, req *dto.CreateCatalogProductRequest) (*dto.CatalogProductResponse, error)
	ListServices(ctx context.Context) (*dto.CatalogServiceListResponse, error)
	ListProducts(ctx context.Context) (*dto.CatalogProductListResponse, error)
}

type catalogUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	catalogRepo repository.CatalogRepository
}

func NewCatalogUsecase(db *gorm.DB, log *logrus.Logger, catalogRepo repository.CatalogRepository) CatalogUsecase {
	return &catalogUsecase{
		db:          db,
		log:         log,
		catalogRepo: catalogRepo,
	}
}

func (u *catalogUsecase) CreateService(ctx context.Context, req *dto.CreateCatalogServiceRequest) (*dto.CatalogServiceResponse, error) {
	svc := &entity.CatalogService{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		IsActive:    true,
	}

	if err := u.catalogRepo.CreateService(u.db.WithContext(ctx), svc); err != nil {
		u.log.Warnf("Failed to create catalog service: %+v", err)
		return nil, err
	}

	u.log.Infof("Catalog service created: id=%s, name=%s", svc.ID, svc.Name)
	return converter.CatalogServiceToResponse(svc), nil
}

func (u *catalogUsecase) CreateProduct(ctx context.Context, req *dto.CreateCatalogProductRequest) (*dto.CatalogProductResponse, error) {
	prod := &entity.CatalogProduct{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    true,
	}

	if err := u.catalogRepo.CreateProduct(u.db.WithContext(ctx), prod); err != nil {
		u.log.Warnf("Failed to create catalog product: %+v", err)
		return nil, err
	}

	u.log.Infof("Catalog product created: id=%s, name=%s", prod.ID, prod.Name)
	return converter.CatalogProductToResponse(prod), nil
}

func (u *catalogUsecase) ListServices(ctx context.Context) (*dto.CatalogServiceListResponse, error) {
	services, err := u.catalogRepo.FindActiveServices(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list catalog services: %+v", err)
		return nil, err
	}

	return &dto.CatalogServiceListResponse{
		Services: converter.CatalogServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *catalogUsecase) ListProducts(ctx context.Context) (*dto.CatalogProductListResponse, error) {
	products, err := u.catalogRepo.FindActiveProducts(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list catalog products: %+v", err)
		return nil, err
	}

	return &dto.CatalogProductListResponse{
		Products: converter.CatalogProductsToResponses(products),
		Total:    len(products),
	}, nil
}
