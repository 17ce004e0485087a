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
	ErrVendorProfileNotFound = errors.New("vendor profile not found for this user")
	ErrBeauticianRequired    = errors.New("an employee id or a beautician spec is required")
)

// Derived per-vendor views of an at-home assignment.
const (
	AssignmentPendingAcceptance = "PENDING_ACCEPTANCE"
	AssignmentAccepted          = "ACCEPTED"
)

// VendorBookingUsecase covers the vendor side of the workflow. The acting
// vendor is always resolved from the authenticated user; a vendor can never
// act on another vendor's assignments.
type VendorBookingUsecase interface {
	ListBookings(ctx context.Context) (*dto.BookingListResponse, error)
	ApproveBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	RejectBooking(ctx context.Context, bookingID uuid.UUID, req *dto.RejectBookingRequest) (*dto.BookingResponse, error)
	AssignBeautician(ctx context.Context, bookingID uuid.UUID, req *dto.AssignBeauticianRequest) (*dto.BookingResponse, error)
	ListAssignments(ctx context.Context) (*dto.BookingListResponse, error)
	AcceptAssignment(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	RejectAssignment(ctx context.Context, bookingID uuid.UUID, req *dto.RejectBookingRequest) error
}

type vendorBookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	bookingRepo     repository.BookingRepository
	bookingItemRepo repository.BookingItemRepository
	vendorRepo      repository.VendorRepository
	employeeRepo    repository.EmployeeRepository
	eventService    service.EventService
}

func NewVendorBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	bookingItemRepo repository.BookingItemRepository,
	vendorRepo repository.VendorRepository,
	employeeRepo repository.EmployeeRepository,
	eventService service.EventService,
) VendorBookingUsecase {
	return &vendorBookingUsecase{
		db:              db,
		log:             log,
		bookingRepo:     bookingRepo,
		bookingItemRepo: bookingItemRepo,
		vendorRepo:      vendorRepo,
		employeeRepo:    employeeRepo,
		eventService:    eventService,
	}
}

// resolveVendor maps the authenticated user to their vendor record.
func (u *vendorBookingUsecase) resolveVendor(ctx context.Context, db *gorm.DB) (*entity.Vendor, error) {
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

// ListBookings returns the vendor's non-terminal bookings, soonest first.
func (u *vendorBookingUsecase) ListBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return nil, err
	}

	bookings, err := u.bookingRepo.FindActiveByVendorID(db, vendor.ID)
	if err != nil {
		u.log.Warnf("Failed to list bookings for vendor %s: %+v", vendor.ID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// ApproveBooking accepts a booking routed to this vendor and moves it to
// AWAITING_BEAUTICIAN. Accepting twice fails: the first accept leaves the
// respondable state behind.
func (u *vendorBookingUsecase) ApproveBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return nil, err
	}

	rows, err := u.bookingRepo.AcceptByVendor(db, bookingID, vendor.ID)
	if err != nil {
		u.log.Warnf("Failed to accept booking %s: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, u.classifyZeroRows(db, bookingID)
	}

	u.eventService.Append(db, bookingID, entity.EventVendorAccepted, &vendor.UserID, entity.JSON{
		"vendor_id": vendor.ID.String(),
	})

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil || booking == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", bookingID, err)
		return nil, ErrBookingNotFound
	}

	u.log.Infof("Booking accepted: booking=%s, vendor=%s", bookingID, vendor.ID)
	return converter.BookingToResponse(booking), nil
}

// RejectBooking sends the booking back to the manager queue with the vendor
// and manager references cleared.
func (u *vendorBookingUsecase) RejectBooking(ctx context.Context, bookingID uuid.UUID, req *dto.RejectBookingRequest) (*dto.BookingResponse, error) {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return nil, err
	}

	rows, err := u.bookingRepo.RejectByVendor(db, bookingID, vendor.ID)
	if err != nil {
		u.log.Warnf("Failed to reject booking %s: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, u.classifyZeroRows(db, bookingID)
	}

	u.eventService.Append(db, bookingID, entity.EventVendorRejected, &vendor.UserID, entity.JSON{
		"vendor_id": vendor.ID.String(),
		"reason":    req.Reason,
	})

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil || booking == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", bookingID, err)
		return nil, ErrBookingNotFound
	}

	u.log.Infof("Booking rejected: booking=%s, vendor=%s", bookingID, vendor.ID)
	return converter.BookingToResponse(booking), nil
}

// AssignBeautician attaches a beautician to the vendor's booking, creating
// the employee inline when a spec is given instead of an id. The booking
// moves to CONFIRMED.
func (u *vendorBookingUsecase) AssignBeautician(ctx context.Context, bookingID uuid.UUID, req *dto.AssignBeauticianRequest) (*dto.BookingResponse, error) {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return nil, err
	}

	if req.EmployeeID == nil && req.Beautician == nil {
		return nil, ErrBeauticianRequired
	}

	tx := db.Begin()
	defer tx.Rollback()

	var employee *entity.Employee
	if req.EmployeeID != nil {
		employee, err = u.employeeRepo.FindActiveByID(tx, *req.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil || (employee.VendorID != nil && *employee.VendorID != vendor.ID) {
			return nil, ErrEmployeeNotFound
		}
	} else {
		employee = &entity.Employee{
			VendorID:       &vendor.ID,
			Name:           req.Beautician.Name,
			Role:           "Beautician",
			Email:          req.Beautician.Email,
			Phone:          req.Beautician.Phone,
			Experience:     req.Beautician.Experience,
			Specialization: req.Beautician.Specialization,
			Status:         entity.EmployeeStatusActive,
		}
		if err := u.employeeRepo.Create(tx, employee); err != nil {
			u.log.Warnf("Failed to create beautician: %+v", err)
			return nil, err
		}
	}

	rows, err := u.bookingRepo.AssignEmployeeByVendor(tx, bookingID, vendor.ID, employee.ID)
	if err != nil {
		u.log.Warnf("Failed to assign beautician on booking %s: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, u.classifyZeroRows(db, bookingID)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Append(db, bookingID, entity.EventBeauticianAssigned, &vendor.UserID, entity.JSON{
		"employee_id":   employee.ID.String(),
		"employee_name": employee.Name,
	})

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil || booking == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", bookingID, err)
		return nil, ErrBookingNotFound
	}

	u.log.Infof("Beautician assigned: booking=%s, vendor=%s, employee=%s", bookingID, vendor.ID, employee.ID)
	return converter.BookingToResponse(booking), nil
}

// ListAssignments returns at-home bookings holding line items routed to this
// vendor, with a derived per-vendor status.
func (u *vendorBookingUsecase) ListAssignments(ctx context.Context) (*dto.BookingListResponse, error) {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return nil, err
	}

	bookingIDs, err := u.bookingItemRepo.FindBookingIDsByAssignedVendor(db, vendor.ID)
	if err != nil {
		u.log.Warnf("Failed to find assignments for vendor %s: %+v", vendor.ID, err)
		return nil, err
	}

	responses := make([]dto.BookingResponse, 0, len(bookingIDs))
	for _, bookingID := range bookingIDs {
		booking, err := u.bookingRepo.FindByID(db, bookingID)
		if err != nil {
			return nil, err
		}
		if booking == nil {
			continue
		}

		resp := converter.BookingToResponse(booking)
		resp.VendorStatus = deriveAssignmentStatus(booking, vendor.ID)
		responses = append(responses, *resp)
	}

	return &dto.BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}, nil
}

// AcceptAssignment accepts the vendor's ASSIGNED items and moves the parent
// booking to ACCEPTED.
func (u *vendorBookingUsecase) AcceptAssignment(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return nil, err
	}

	tx := db.Begin()
	defer tx.Rollback()

	rows, err := u.bookingItemRepo.AcceptByVendor(tx, bookingID, vendor.ID)
	if err != nil {
		u.log.Warnf("Failed to accept items on booking %s: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, u.classifyZeroRows(db, bookingID)
	}

	from := []entity.BookingStatus{entity.BookingStatusAssigned, entity.BookingStatusAccepted}
	if _, err := u.bookingRepo.UpdateStatus(tx, bookingID, from, entity.BookingStatusAccepted); err != nil {
		u.log.Warnf("Failed to update booking %s status: %+v", bookingID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.eventService.Append(db, bookingID, entity.EventVendorAccepted, &vendor.UserID, entity.JSON{
		"vendor_id": vendor.ID.String(),
	})

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil || booking == nil {
		u.log.Warnf("Failed to reload booking %s: %+v", bookingID, err)
		return nil, ErrBookingNotFound
	}

	u.log.Infof("Assignment accepted: booking=%s, vendor=%s", bookingID, vendor.ID)
	return converter.BookingToResponse(booking), nil
}

// RejectAssignment releases the vendor's items back to PENDING and resets the
// parent booking for re-routing.
func (u *vendorBookingUsecase) RejectAssignment(ctx context.Context, bookingID uuid.UUID, req *dto.RejectBookingRequest) error {
	db := u.db.WithContext(ctx)

	vendor, err := u.resolveVendor(ctx, db)
	if err != nil {
		return err
	}

	tx := db.Begin()
	defer tx.Rollback()

	rows, err := u.bookingItemRepo.ReleaseByVendor(tx, bookingID, vendor.ID)
	if err != nil {
		u.log.Warnf("Failed to release items on booking %s: %+v", bookingID, err)
		return err
	}
	if rows == 0 {
		return u.classifyZeroRows(db, bookingID)
	}

	from := []entity.BookingStatus{entity.BookingStatusAssigned, entity.BookingStatusAccepted}
	if _, err := u.bookingRepo.UpdateStatus(tx, bookingID, from, entity.BookingStatusPending); err != nil {
		u.log.Warnf("Failed to reset booking %s status: %+v", bookingID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.eventService.Append(db, bookingID, entity.EventVendorRejected, &vendor.UserID, entity.JSON{
		"vendor_id": vendor.ID.String(),
		"reason":    req.Reason,
	})

	u.log.Infof("Assignment rejected: booking=%s, vendor=%s", bookingID, vendor.ID)
	return nil
}

func (u *vendorBookingUsecase) classifyZeroRows(db *gorm.DB, bookingID uuid.UUID) error {
	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	return ErrInvalidState
}

// deriveAssignmentStatus reduces a booking's items assigned to one vendor to
// a single display status. Any still-ASSIGNED item means the vendor has not
// responded yet.
func deriveAssignmentStatus(booking *entity.Booking, vendorID uuid.UUID) string {
	accepted := false
	for _, item := range booking.Services {
		if item.AssignedVendorID == nil || *item.AssignedVendorID != vendorID {
			continue
		}
		if item.Status == entity.ItemStatusAssigned {
			return AssignmentPendingAcceptance
		}
		if item.Status == entity.ItemStatusAccepted {
			accepted = true
		}
	}
	for _, item := range booking.Products {
		if item.AssignedVendorID == nil || *item.AssignedVendorID != vendorID {
			continue
		}
		if item.Status == entity.ItemStatusAssigned {
			return AssignmentPendingAcceptance
		}
		if item.Status == entity.ItemStatusAccepted {
			accepted = true
		}
	}
	if accepted {
		return AssignmentAccepted
	}
	return AssignmentPendingAcceptance
}
