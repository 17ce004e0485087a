package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/converter"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/http/middleware"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateFormat   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrEmptyBooking        = errors.New("booking must contain at least one service or product")
	ErrCatalogItemNotFound = errors.New("catalog item not found or inactive")
	ErrBookingNotOwned     = errors.New("booking does not belong to you")
)

type CustomerBookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, req *dto.CancelBookingRequest) error
}

type customerBookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	bookingRepo     repository.BookingRepository
	bookingItemRepo repository.BookingItemRepository
	catalogRepo     repository.CatalogRepository
	eventService    service.EventService
}

func NewCustomerBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	bookingItemRepo repository.BookingItemRepository,
	catalogRepo repository.CatalogRepository,
	eventService service.EventService,
) CustomerBookingUsecase {
	return &customerBookingUsecase{
		db:              db,
		log:             log,
		bookingRepo:     bookingRepo,
		bookingItemRepo: bookingItemRepo,
		catalogRepo:     catalogRepo,
		eventService:    eventService,
	}
}

// CreateBooking creates a booking with its line items in one transaction.
// At-home bookings enter the manager routing queue immediately; in-salon
// bookings stay PENDING for direct assignment.
func (u *customerBookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if len(req.Services) == 0 && len(req.Products) == 0 {
		return nil, ErrEmptyBooking
	}

	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	db := u.db.WithContext(ctx)

	// Price line items from the catalog, never from the request
	catalogServices, err := u.lookupServices(db, req.Services)
	if err != nil {
		return nil, err
	}
	catalogProducts, err := u.lookupProducts(db, req.Products)
	if err != nil {
		return nil, err
	}

	status := entity.BookingStatusPending
	if entity.BookingType(req.BookingType) == entity.BookingTypeAtHome {
		status = entity.BookingStatusAwaitingManager
	}

	subtotal := decimal.Zero
	serviceItems := make([]entity.BookingService, 0, len(req.Services))
	for _, item := range req.Services {
		svc := catalogServices[item.CatalogID]
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		subtotal = subtotal.Add(svc.Price.Mul(decimal.NewFromInt(int64(quantity))))
		serviceItems = append(serviceItems, entity.BookingService{
			CatalogServiceID: svc.ID,
			Status:           entity.ItemStatusPending,
			Price:            svc.Price,
			Quantity:         quantity,
		})
	}
	productItems := make([]entity.BookingProduct, 0, len(req.Products))
	for _, item := range req.Products {
		prod := catalogProducts[item.CatalogID]
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		subtotal = subtotal.Add(prod.Price.Mul(decimal.NewFromInt(int64(quantity))))
		productItems = append(productItems, entity.BookingProduct{
			CatalogProductID: prod.ID,
			Status:           entity.ItemStatusPending,
			Price:            prod.Price,
			Quantity:         quantity,
		})
	}

	booking := &entity.Booking{
		CustomerID:    customerID,
		BookingType:   entity.BookingType(req.BookingType),
		Status:        status,
		ScheduledDate: scheduledDate,
		ScheduledTime: req.ScheduledTime,
		Subtotal:      subtotal,
		Discount:      decimal.Zero,
		Tax:           decimal.Zero,
		Total:         subtotal,
		Notes:         req.Notes,
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	for i := range serviceItems {
		serviceItems[i].BookingID = booking.ID
	}
	for i := range productItems {
		productItems[i].BookingID = booking.ID
	}

	if len(serviceItems) > 0 {
		if err := u.bookingItemRepo.CreateServices(tx, serviceItems); err != nil {
			u.log.Warnf("Failed to create booking services: %+v", err)
			return nil, err
		}
	}
	if len(productItems) > 0 {
		if err := u.bookingItemRepo.CreateProducts(tx, productItems); err != nil {
			u.log.Warnf("Failed to create booking products: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Append(db, booking.ID, entity.EventBookingCreated, &customerID, entity.JSON{
		"booking_type": string(booking.BookingType),
		"status":       string(booking.Status),
		"total":        booking.Total.String(),
	})

	full, err := u.bookingRepo.FindByID(db, booking.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", booking.ID, err)
		return converter.BookingToResponse(booking), nil
	}

	u.log.Infof("Booking created: id=%s, type=%s, status=%s, total=%s", booking.ID, booking.BookingType, booking.Status, booking.Total)
	return converter.BookingToResponse(full), nil
}

// GetMyBookings returns all bookings for the logged-in customer
func (u *customerBookingUsecase) GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	bookings, err := u.bookingRepo.FindByCustomerID(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for customer %s: %+v", customerID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// CancelBooking cancels the customer's own booking unless it already reached
// a terminal state.
func (u *customerBookingUsecase) CancelBooking(ctx context.Context, bookingID uuid.UUID, req *dto.CancelBookingRequest) error {
	customerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if booking.CustomerID != customerID {
		return ErrBookingNotOwned
	}

	rows, err := u.bookingRepo.Cancel(db, bookingID, req.Reason)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", bookingID, err)
		return err
	}
	if rows == 0 {
		return ErrInvalidState
	}

	u.eventService.Append(db, bookingID, entity.EventBookingCancelled, &customerID, entity.JSON{
		"reason": req.Reason,
	})

	u.log.Infof("Booking cancelled: id=%s, customer=%s", bookingID, customerID)
	return nil
}

func (u *customerBookingUsecase) lookupServices(db *gorm.DB, items []dto.BookingItemRequest) (map[uuid.UUID]entity.CatalogService, error) {
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.CatalogID)
	}

	entries, err := u.catalogRepo.FindServicesByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to look up catalog services: %+v", err)
		return nil, err
	}

	byID := make(map[uuid.UUID]entity.CatalogService, len(entries))
	for _, entry := range entries {
		if entry.IsActive {
			byID[entry.ID] = entry
		}
	}
	for _, item := range items {
		if _, ok := byID[item.CatalogID]; !ok {
			return nil, ErrCatalogItemNotFound
		}
	}
	return byID, nil
}

func (u *customerBookingUsecase) lookupProducts(db *gorm.DB, items []dto.BookingItemRequest) (map[uuid.UUID]entity.CatalogProduct, error) {
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.CatalogID)
	}

	entries, err := u.catalogRepo.FindProductsByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to look up catalog products: %+v", err)
		return nil, err
	}

	byID := make(map[uuid.UUID]entity.CatalogProduct, len(entries))
	for _, entry := range entries {
		if entry.IsActive {
			byID[entry.ID] = entry
		}
	}
	for _, item := range items {
		if _, ok := byID[item.CatalogID]; !ok {
			return nil, ErrCatalogItemNotFound
		}
	}
	return byID, nil
}
