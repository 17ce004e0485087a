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
	ErrBookingNotFound  = errors.New("booking not found")
	ErrVendorNotFound   = errors.New("vendor not found or not approved")
	ErrEmployeeNotFound = errors.New("employee not found or not active")
	ErrInvalidState     = errors.New("booking is not in a valid state for this action")
)

type ManagerBookingUsecase interface {
	ListBookings(ctx context.Context, filter repository.BookingFilter) (*dto.BookingListResponse, int64, error)
	GetBookingStats(ctx context.Context) (*dto.BookingStatsResponse, error)
	GetBookingEvents(ctx context.Context, bookingID uuid.UUID) ([]dto.BookingEventResponse, error)
	AssignVendor(ctx context.Context, bookingID uuid.UUID, req *dto.AssignVendorRequest) (*dto.BookingResponse, error)
	AssignEmployee(ctx context.Context, bookingID uuid.UUID, req *dto.AssignEmployeeRequest) (*dto.BookingResponse, error)
	ListEmployees(ctx context.Context, vendorID *uuid.UUID) (*dto.EmployeeListResponse, error)
}

type managerBookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	vendorRepo   repository.VendorRepository
	employeeRepo repository.EmployeeRepository
	eventService service.EventService
}

func NewManagerBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	vendorRepo repository.VendorRepository,
	employeeRepo repository.EmployeeRepository,
	eventService service.EventService,
) ManagerBookingUsecase {
	return &managerBookingUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		vendorRepo:   vendorRepo,
		employeeRepo: employeeRepo,
		eventService: eventService,
	}
}

// ListBookings returns the manager dashboard listing, newest scheduled first.
func (u *managerBookingUsecase) ListBookings(ctx context.Context, filter repository.BookingFilter) (*dto.BookingListResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	bookings, total, err := u.bookingRepo.FindForManager(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, 0, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, total, nil
}

// GetBookingStats summarizes booking counts for the dashboard header.
func (u *managerBookingUsecase) GetBookingStats(ctx context.Context) (*dto.BookingStatsResponse, error) {
	db := u.db.WithContext(ctx)

	stats := &dto.BookingStatsResponse{}
	counts := []struct {
		dest     *int64
		statuses []entity.BookingStatus
	}{
		{&stats.Total, entity.AllBookingStatuses},
		{&stats.AwaitingAction, []entity.BookingStatus{
			entity.BookingStatusPending,
			entity.BookingStatusAwaitingManager,
			entity.BookingStatusAwaitingVendorResponse,
			entity.BookingStatusAwaitingBeautician,
			entity.BookingStatusAssigned,
		}},
		{&stats.Confirmed, []entity.BookingStatus{entity.BookingStatusConfirmed, entity.BookingStatusAccepted}},
		{&stats.InProgress, []entity.BookingStatus{entity.BookingStatusInProgress}},
		{&stats.Completed, []entity.BookingStatus{entity.BookingStatusCompleted}},
		{&stats.Cancelled, []entity.BookingStatus{entity.BookingStatusCancelled, entity.BookingStatusRejected}},
	}

	for _, count := range counts {
		n, err := u.bookingRepo.CountByStatuses(db, count.statuses...)
		if err != nil {
			u.log.Warnf("Failed to count bookings: %+v", err)
			return nil, err
		}
		*count.dest = n
	}

	return stats, nil
}

// GetBookingEvents returns the booking's append-only audit trail.
func (u *managerBookingUsecase) GetBookingEvents(ctx context.Context, bookingID uuid.UUID) ([]dto.BookingEventResponse, error) {
	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	events, err := u.eventService.History(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to load events for booking %s: %+v", bookingID, err)
		return nil, err
	}

	return converter.BookingEventsToResponses(events), nil
}

// AssignVendor routes a booking to an approved vendor and moves it to
// AWAITING_VENDOR_RESPONSE.
func (u *managerBookingUsecase) AssignVendor(ctx context.Context, bookingID uuid.UUID, req *dto.AssignVendorRequest) (*dto.BookingResponse, error) {
	managerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	// An unapproved vendor is indistinguishable from a missing one on purpose
	vendor, err := u.vendorRepo.FindApprovedByID(db, req.VendorID)
	if err != nil {
		u.log.Warnf("Failed to find vendor %s: %+v", req.VendorID, err)
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	rows, err := u.bookingRepo.AssignVendor(db, bookingID, repository.VendorAssignment{
		VendorID:  vendor.ID,
		ManagerID: managerID,
	})
	if err != nil {
		u.log.Warnf("Failed to assign vendor to booking %s: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, u.classifyZeroRows(db, bookingID)
	}

	u.eventService.Append(db, bookingID, entity.EventManagerAssignedVendor, &managerID, entity.JSON{
		"vendor_id": vendor.ID.String(),
		"shop_name": vendor.ShopName,
	})

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil || booking == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", bookingID, err)
		return nil, ErrBookingNotFound
	}

	u.log.Infof("Vendor assigned: booking=%s, vendor=%s, manager=%s", bookingID, vendor.ID, managerID)
	return converter.BookingToResponse(booking), nil
}

// AssignEmployee attaches a beautician directly, the in-salon shortcut that
// skips the vendor-response step and confirms the booking.
func (u *managerBookingUsecase) AssignEmployee(ctx context.Context, bookingID uuid.UUID, req *dto.AssignEmployeeRequest) (*dto.BookingResponse, error) {
	managerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	employee, err := u.employeeRepo.FindActiveByID(db, req.EmployeeID)
	if err != nil {
		u.log.Warnf("Failed to find employee %s: %+v", req.EmployeeID, err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	from := append([]entity.BookingStatus{}, entity.ManagerAssignableStatuses...)
	from = append(from, entity.BookingStatusAwaitingBeautician)

	rows, err := u.bookingRepo.AssignEmployee(db, bookingID, employee.ID, &managerID, from)
	if err != nil {
		u.log.Warnf("Failed to assign employee to booking %s: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, u.classifyZeroRows(db, bookingID)
	}

	u.eventService.Append(db, bookingID, entity.EventBeauticianAssigned, &managerID, entity.JSON{
		"employee_id":   employee.ID.String(),
		"employee_name": employee.Name,
	})

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil || booking == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", bookingID, err)
		return nil, ErrBookingNotFound
	}

	u.log.Infof("Employee assigned: booking=%s, employee=%s", bookingID, employee.ID)
	return converter.BookingToResponse(booking), nil
}

// ListEmployees returns active beauticians, optionally scoped to one vendor.
func (u *managerBookingUsecase) ListEmployees(ctx context.Context, vendorID *uuid.UUID) (*dto.EmployeeListResponse, error) {
	employees, err := u.employeeRepo.FindByStatus(u.db.WithContext(ctx), entity.EmployeeStatusActive, vendorID)
	if err != nil {
		u.log.Warnf("Failed to list employees: %+v", err)
		return nil, err
	}

	return &dto.EmployeeListResponse{
		Employees: converter.EmployeesToResponses(employees),
		Total:     len(employees),
	}, nil
}

// classifyZeroRows distinguishes a missing booking from one in the wrong
// state after a conditional UPDATE touched no rows.
func (u *managerBookingUsecase) classifyZeroRows(db *gorm.DB, bookingID uuid.UUID) error {
	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	return ErrInvalidState
}
