package usecase

import (
	"context"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/converter"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// VendorDirectoryUsecase is the admin view of the vendor directory. Vendors
// are never hard-deleted; rejection keeps the record with a reason.
type VendorDirectoryUsecase interface {
	ListVendors(ctx context.Context, status entity.VendorStatus) (*dto.VendorListResponse, error)
	ApproveVendor(ctx context.Context, vendorID uuid.UUID) (*dto.VendorResponse, error)
	RejectVendor(ctx context.Context, vendorID uuid.UUID, req *dto.RejectVendorRequest) (*dto.VendorResponse, error)
}

type vendorDirectoryUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	vendorRepo repository.VendorRepository
}

func NewVendorDirectoryUsecase(db *gorm.DB, log *logrus.Logger, vendorRepo repository.VendorRepository) VendorDirectoryUsecase {
	return &vendorDirectoryUsecase{
		db:         db,
		log:        log,
		vendorRepo: vendorRepo,
	}
}

func (u *vendorDirectoryUsecase) ListVendors(ctx context.Context, status entity.VendorStatus) (*dto.VendorListResponse, error) {
	vendors, err := u.vendorRepo.FindByStatus(u.db.WithContext(ctx), status)
	if err != nil {
		u.log.Warnf("Failed to list vendors: %+v", err)
		return nil, err
	}

	return &dto.VendorListResponse{
		Vendors: converter.VendorsToResponses(vendors),
		Total:   len(vendors),
	}, nil
}

func (u *vendorDirectoryUsecase) ApproveVendor(ctx context.Context, vendorID uuid.UUID) (*dto.VendorResponse, error) {
	return u.decide(ctx, vendorID, entity.VendorStatusApproved, "")
}

func (u *vendorDirectoryUsecase) RejectVendor(ctx context.Context, vendorID uuid.UUID, req *dto.RejectVendorRequest) (*dto.VendorResponse, error) {
	return u.decide(ctx, vendorID, entity.VendorStatusRejected, req.Reason)
}

// decide applies an approval decision. Repeating the same decision is a
// no-op, not an error.
func (u *vendorDirectoryUsecase) decide(ctx context.Context, vendorID uuid.UUID, status entity.VendorStatus, reason string) (*dto.VendorResponse, error) {
	db := u.db.WithContext(ctx)

	rows, err := u.vendorRepo.UpdateStatus(db, vendorID, status, reason)
	if err != nil {
		u.log.Warnf("Failed to update vendor %s status: %+v", vendorID, err)
		return nil, err
	}

	vendor, err := u.vendorRepo.FindByID(db, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	if rows > 0 {
		u.log.Infof("Vendor %s: %s", status, vendorID)
	}
	return converter.VendorToResponse(vendor), nil
}
