package usecase

import (
	"context"
	"errors"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/converter"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/http/middleware"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotAtHomeBooking = errors.New("booking is not an at-home booking")
	ErrNoVendorGiven    = errors.New("at least one of service or product vendor is required")
	ErrNoItemsToAssign  = errors.New("booking has no assignable items of the requested kind")
)

// AtHomeAssignmentUsecase drives the at-home dispatch flow: managers inspect
// the queue, ask the matching engine for candidates, and route line items to
// vendors.
type AtHomeAssignmentUsecase interface {
	ListAtHomeBookings(ctx context.Context) (*dto.BookingListResponse, error)
	EligibleVendors(ctx context.Context, bookingID uuid.UUID) (*dto.EligibleVendorsResponse, error)
	AssignVendors(ctx context.Context, bookingID uuid.UUID, req *dto.AssignAtHomeVendorsRequest) (*dto.BookingResponse, error)
}

type atHomeAssignmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	bookingRepo     repository.BookingRepository
	bookingItemRepo repository.BookingItemRepository
	vendorRepo      repository.VendorRepository
	matchingService service.MatchingService
	eventService    service.EventService
}

func NewAtHomeAssignmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	bookingItemRepo repository.BookingItemRepository,
	vendorRepo repository.VendorRepository,
	matchingService service.MatchingService,
	eventService service.EventService,
) AtHomeAssignmentUsecase {
	return &atHomeAssignmentUsecase{
		db:              db,
		log:             log,
		bookingRepo:     bookingRepo,
		bookingItemRepo: bookingItemRepo,
		vendorRepo:      vendorRepo,
		matchingService: matchingService,
		eventService:    eventService,
	}
}

// ListAtHomeBookings returns the at-home dispatch queue with line items.
func (u *atHomeAssignmentUsecase) ListAtHomeBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindAtHome(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list at-home bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// EligibleVendors runs the matching engine over the booking's line items.
func (u *atHomeAssignmentUsecase) EligibleVendors(ctx context.Context, bookingID uuid.UUID) (*dto.EligibleVendorsResponse, error) {
	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !booking.IsAtHome() {
		return nil, ErrNotAtHomeBooking
	}

	services, err := u.bookingItemRepo.FindServicesByBookingID(db, bookingID)
	if err != nil {
		return nil, err
	}
	products, err := u.bookingItemRepo.FindProductsByBookingID(db, bookingID)
	if err != nil {
		return nil, err
	}

	result, err := u.matchingService.EligibleVendors(db, services, products)
	if err != nil {
		u.log.Warnf("Matching failed for booking %s: %+v", bookingID, err)
		return nil, err
	}

	return converter.MatchResultToEligibleVendorsResponse(result), nil
}

// AssignVendors routes the booking's line items to the given vendor(s) and
// moves the parent to ASSIGNED. Items and parent mutate in one transaction.
func (u *atHomeAssignmentUsecase) AssignVendors(ctx context.Context, bookingID uuid.UUID, req *dto.AssignAtHomeVendorsRequest) (*dto.BookingResponse, error) {
	managerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if req.ServiceVendorID == nil && req.ProductVendorID == nil {
		return nil, ErrNoVendorGiven
	}

	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !booking.IsAtHome() {
		return nil, ErrNotAtHomeBooking
	}

	payload := entity.JSON{}

	tx := db.Begin()
	defer tx.Rollback()

	if req.ServiceVendorID != nil {
		vendor, err := u.vendorRepo.FindApprovedByID(tx, *req.ServiceVendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, ErrVendorNotFound
		}
		rows, err := u.bookingItemRepo.AssignServiceVendor(tx, bookingID, vendor.ID)
		if err != nil {
			u.log.Warnf("Failed to assign service vendor on booking %s: %+v", bookingID, err)
			return nil, err
		}
		if rows == 0 {
			return nil, ErrNoItemsToAssign
		}
		payload["service_vendor_id"] = vendor.ID.String()
	}

	if req.ProductVendorID != nil {
		vendor, err := u.vendorRepo.FindApprovedByID(tx, *req.ProductVendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, ErrVendorNotFound
		}
		rows, err := u.bookingItemRepo.AssignProductVendor(tx, bookingID, vendor.ID)
		if err != nil {
			u.log.Warnf("Failed to assign product vendor on booking %s: %+v", bookingID, err)
			return nil, err
		}
		if rows == 0 {
			return nil, ErrNoItemsToAssign
		}
		payload["product_vendor_id"] = vendor.ID.String()
	}

	from := append([]entity.BookingStatus{}, entity.ManagerAssignableStatuses...)
	from = append(from, entity.BookingStatusAssigned)

	rows, err := u.bookingRepo.UpdateStatus(tx, bookingID, from, entity.BookingStatusAssigned)
	if err != nil {
		u.log.Warnf("Failed to update booking %s status: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInvalidState
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Append(db, bookingID, entity.EventManagerAssignedVendor, &managerID, payload)

	updated, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil || updated == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", bookingID, err)
		return nil, ErrBookingNotFound
	}

	u.log.Infof("At-home vendors assigned: booking=%s, manager=%s", bookingID, managerID)
	return converter.BookingToResponse(updated), nil
}
