package usecase

import (
	"context"
	"errors"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/converter"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/http/middleware"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVendorNotApproved = errors.New("vendor is not approved")
	ErrOfferingNotFound  = errors.New("offering not found")
)

// VendorOfferingUsecase lets vendors manage their own service and product
// listings. These listings feed the matching engine's exact and category
// tiers. Only APPROVED vendors may add listings; any vendor can view or
// remove their own.
type VendorOfferingUsecase interface {
	ListOfferings(ctx context.Context) (*dto.VendorOfferingListResponse, error)
	AddService(ctx context.Context, req *dto.CreateVendorServiceRequest) (*dto.VendorServiceResponse, error)
	AddProduct(ctx context.Context, req *dto.CreateVendorProductRequest) (*dto.VendorProductResponse, error)
	RemoveService(ctx context.Context, offeringID uuid.UUID) error
	RemoveProduct(ctx context.Context, offeringID uuid.UUID) error
}

type vendorOfferingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	vendorRepo   repository.VendorRepository
	catalogRepo  repository.CatalogRepository
	offeringRepo repository.VendorOfferingRepository
}

func NewVendorOfferingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vendorRepo repository.VendorRepository,
	catalogRepo repository.CatalogRepository,
	offeringRepo repository.VendorOfferingRepository,
) VendorOfferingUsecase {
	return &vendorOfferingUsecase{
		db:           db,
		log:          log,
		vendorRepo:   vendorRepo,
		catalogRepo:  catalogRepo,
		offeringRepo: offeringRepo,
	}
}

func (u *vendorOfferingUsecase) resolveVendor(ctx context.Context, db *gorm.DB) (*entity.Vendor, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	vendor, err := u.vendorRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find vendor for user %s: %+v", userID, err)
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorProfileNotFound
	}
	return vendor, nil
}

// ListOfferings returns the vendor's current service and product listings.
func (u *vendorOfferingUsecase) ListOfferings(ctx context.Context) (*dto.VendorOfferingListResponse, error) {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return nil, err
	}

	services, err := u.offeringRepo.FindServicesByVendorIDs(db, []uuid.UUID{vendor.ID})
	if err != nil {
		u.log.Warnf("Failed to list services for vendor %s: %+v", vendor.ID, err)
		return nil, err
	}
	products, err := u.offeringRepo.FindProductsByVendorIDs(db, []uuid.UUID{vendor.ID})
	if err != nil {
		u.log.Warnf("Failed to list products for vendor %s: %+v", vendor.ID, err)
		return nil, err
	}

	response := &dto.VendorOfferingListResponse{
		Services: make([]dto.VendorServiceResponse, 0, len(services)),
		Products: make([]dto.VendorProductResponse, 0, len(products)),
	}
	for i := range services {
		response.Services = append(response.Services, converter.VendorServiceToResponse(&services[i]))
	}
	for i := range products {
		response.Products = append(response.Products, converter.VendorProductToResponse(&products[i]))
	}
	return response, nil
}

// AddService lists a catalog service under the vendor at the given price. The
// offering's category is copied from the catalog entry so the matching engine
// can match on it without a join.
func (u *vendorOfferingUsecase) AddService(ctx context.Context, req *dto.CreateVendorServiceRequest) (*dto.VendorServiceResponse, error) {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return nil, err
	}
	if !vendor.IsApproved() {
		return nil, ErrVendorNotApproved
	}

	catalog, err := u.catalogRepo.FindServiceByID(db, req.CatalogServiceID)
	if err != nil {
		u.log.Warnf("Failed to look up catalog service %s: %+v", req.CatalogServiceID, err)
		return nil, err
	}
	if catalog == nil || !catalog.IsActive {
		return nil, ErrCatalogItemNotFound
	}

	offering := &entity.VendorService{
		VendorID:         vendor.ID,
		CatalogServiceID: catalog.ID,
		Category:         catalog.Category,
		Price:            req.Price,
	}
	if err := u.offeringRepo.CreateService(db, offering); err != nil {
		u.log.Warnf("Failed to create service offering for vendor %s: %+v", vendor.ID, err)
		return nil, err
	}
	offering.CatalogService = *catalog

	u.log.Infof("Service offering added: vendor=%s, catalog_service=%s", vendor.ID, catalog.ID)
	response := converter.VendorServiceToResponse(offering)
	return &response, nil
}

// AddProduct lists a catalog product under the vendor at the given price.
func (u *vendorOfferingUsecase) AddProduct(ctx context.Context, req *dto.CreateVendorProductRequest) (*dto.VendorProductResponse, error) {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return nil, err
	}
	if !vendor.IsApproved() {
		return nil, ErrVendorNotApproved
	}

	catalog, err := u.catalogRepo.FindProductByID(db, req.CatalogProductID)
	if err != nil {
		u.log.Warnf("Failed to look up catalog product %s: %+v", req.CatalogProductID, err)
		return nil, err
	}
	if catalog == nil || !catalog.IsActive {
		return nil, ErrCatalogItemNotFound
	}

	offering := &entity.VendorProduct{
		VendorID:         vendor.ID,
		CatalogProductID: catalog.ID,
		Category:         catalog.Category,
		Price:            req.Price,
	}
	if err := u.offeringRepo.CreateProduct(db, offering); err != nil {
		u.log.Warnf("Failed to create product offering for vendor %s: %+v", vendor.ID, err)
		return nil, err
	}
	offering.CatalogProduct = *catalog

	u.log.Infof("Product offering added: vendor=%s, catalog_product=%s", vendor.ID, catalog.ID)
	response := converter.VendorProductToResponse(offering)
	return &response, nil
}

// RemoveService deletes one of the vendor's own service listings.
func (u *vendorOfferingUsecase) RemoveService(ctx context.Context, offeringID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return err
	}

	rows, err := u.offeringRepo.DeleteServiceByVendor(db, offeringID, vendor.ID)
	if err != nil {
		u.log.Warnf("Failed to delete service offering %s: %+v", offeringID, err)
		return err
	}
	if rows == 0 {
		return ErrOfferingNotFound
	}

	u.log.Infof("Service offering removed: vendor=%s, offering=%s", vendor.ID, offeringID)
	return nil
}

// RemoveProduct deletes one of the vendor's own product listings.
func (u *vendorOfferingUsecase) RemoveProduct(ctx context.Context, offeringID uuid.UUID) error {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return err
	}

	rows, err := u.offeringRepo.DeleteProductByVendor(db, offeringID, vendor.ID)
	if err != nil {
		u.log.Warnf("Failed to delete product offering %s: %+v", offeringID, err)
		return err
	}
	if rows == 0 {
		return ErrOfferingNotFound
	}

	u.log.Infof("Product offering removed: vendor=%s, offering=%s", vendor.ID, offeringID)
	return nil
}
