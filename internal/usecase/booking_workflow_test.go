package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/http/middleware"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/repository"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testSchema = []string{
	`CREATE TABLE roles (
		id INTEGER PRIMARY KEY,
		role_name TEXT,
		description TEXT
	)`,
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		role_id INTEGER,
		email TEXT,
		password TEXT,
		first_name TEXT,
		last_name TEXT,
		phone TEXT,
		is_active NUMERIC,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE vendors (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		shop_name TEXT,
		address TEXT,
		city TEXT,
		status TEXT,
		rejection_reason TEXT,
		opening_time TEXT,
		closing_time TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE catalog_services (
		id TEXT PRIMARY KEY,
		name TEXT,
		category TEXT,
		description TEXT,
		price NUMERIC,
		duration INTEGER,
		is_active NUMERIC,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE catalog_products (
		id TEXT PRIMARY KEY,
		name TEXT,
		category TEXT,
		description TEXT,
		price NUMERIC,
		is_active NUMERIC,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE vendor_services (
		id TEXT PRIMARY KEY,
		vendor_id TEXT,
		catalog_service_id TEXT,
		category TEXT,
		price NUMERIC,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE vendor_products (
		id TEXT PRIMARY KEY,
		vendor_id TEXT,
		catalog_product_id TEXT,
		category TEXT,
		price NUMERIC,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE employees (
		id TEXT PRIMARY KEY,
		vendor_id TEXT,
		name TEXT,
		role TEXT,
		email TEXT,
		phone TEXT,
		experience INTEGER,
		specialization TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE bookings (
		id TEXT PRIMARY KEY,
		customer_id TEXT,
		vendor_id TEXT,
		manager_id TEXT,
		employee_id TEXT,
		booking_type TEXT,
		status TEXT,
		scheduled_date DATETIME,
		scheduled_time TEXT,
		subtotal NUMERIC,
		discount NUMERIC,
		tax NUMERIC,
		total NUMERIC,
		notes TEXT,
		cancellation_reason TEXT,
		manager_assigned_at DATETIME,
		vendor_responded_at DATETIME,
		beautician_assigned_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE booking_services (
		id TEXT PRIMARY KEY,
		booking_id TEXT,
		catalog_service_id TEXT,
		assigned_vendor_id TEXT,
		status TEXT,
		price NUMERIC,
		quantity INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE booking_products (
		id TEXT PRIMARY KEY,
		booking_id TEXT,
		catalog_product_id TEXT,
		assigned_vendor_id TEXT,
		status TEXT,
		price NUMERIC,
		quantity INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE booking_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		booking_id TEXT,
		type TEXT,
		actor_id TEXT,
		payload TEXT,
		created_at DATETIME
	)`,
}

// workflowFixture wires the repositories and usecases against one sqlite
// database, mirroring the bootstrap wiring.
type workflowFixture struct {
	db       *gorm.DB
	manager  ManagerBookingUsecase
	atHome   AtHomeAssignmentUsecase
	vendor   VendorBookingUsecase
	customer CustomerBookingUsecase
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	bookingRepo := repository.NewBookingRepository()
	bookingItemRepo := repository.NewBookingItemRepository()
	vendorRepo := repository.NewVendorRepository()
	employeeRepo := repository.NewEmployeeRepository()
	catalogRepo := repository.NewCatalogRepository()
	offeringRepo := repository.NewVendorOfferingRepository()

	eventService := service.NewEventService(log, repository.NewBookingEventRepository())
	matchingService := service.NewMatchingService(log, vendorRepo, catalogRepo, offeringRepo)

	return &workflowFixture{
		db:       db,
		manager:  NewManagerBookingUsecase(db, log, bookingRepo, vendorRepo, employeeRepo, eventService),
		atHome:   NewAtHomeAssignmentUsecase(db, log, bookingRepo, bookingItemRepo, vendorRepo, matchingService, eventService),
		vendor:   NewVendorBookingUsecase(db, log, bookingRepo, bookingItemRepo, vendorRepo, employeeRepo, eventService),
		customer: NewCustomerBookingUsecase(db, log, bookingRepo, bookingItemRepo, catalogRepo, eventService),
	}
}

func authedContext(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}

func (f *workflowFixture) createVendor(t *testing.T, shopName string, status entity.VendorStatus) *entity.Vendor {
	t.Helper()

	vendor := &entity.Vendor{
		UserID:   uuid.New(),
		ShopName: shopName,
		City:     "Kinshasa",
		Status:   status,
	}
	require.NoError(t, f.db.Create(vendor).Error)
	return vendor
}

func (f *workflowFixture) createBooking(t *testing.T, bookingType entity.BookingType, status entity.BookingStatus) *entity.Booking {
	t.Helper()

	booking := &entity.Booking{
		CustomerID:    uuid.New(),
		BookingType:   bookingType,
		Status:        status,
		ScheduledDate: time.Now().AddDate(0, 0, 7),
		ScheduledTime: "14:00",
		Subtotal:      decimal.NewFromInt(100),
		Total:         decimal.NewFromInt(100),
	}
	require.NoError(t, f.db.Create(booking).Error)
	return booking
}

func (f *workflowFixture) createCatalogService(t *testing.T, name string, price int64) *entity.CatalogService {
	t.Helper()

	entry := &entity.CatalogService{
		Name:     name,
		Category: "Makeup",
		Price:    decimal.NewFromInt(price),
		IsActive: true,
	}
	require.NoError(t, f.db.Create(entry).Error)
	return entry
}

func (f *workflowFixture) eventTypes(t *testing.T, bookingID uuid.UUID) []string {
	t.Helper()

	var events []entity.BookingEvent
	require.NoError(t, f.db.Where("booking_id = ?", bookingID).Order("id ASC").Find(&events).Error)
	types := make([]string, 0, len(events))
	for _, event := range events {
		types = append(types, event.Type)
	}
	return types
}

func TestManagerAssignVendor(t *testing.T) {
	f := newWorkflowFixture(t)
	managerID := uuid.New()
	vendor := f.createVendor(t, "Glow Studio", entity.VendorStatusApproved)
	booking := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusAwaitingManager)

	resp, err := f.manager.AssignVendor(authedContext(managerID), booking.ID, &dto.AssignVendorRequest{VendorID: vendor.ID})
	require.NoError(t, err)

	assert.Equal(t, string(entity.BookingStatusAwaitingVendorResponse), resp.Status)
	require.NotNil(t, resp.VendorID)
	assert.Equal(t, vendor.ID, *resp.VendorID)

	var stored entity.Booking
	require.NoError(t, f.db.First(&stored, "id = ?", booking.ID).Error)
	require.NotNil(t, stored.ManagerID)
	assert.Equal(t, managerID, *stored.ManagerID)
	assert.NotNil(t, stored.ManagerAssignedAt)

	assert.Contains(t, f.eventTypes(t, booking.ID), entity.EventManagerAssignedVendor)
}

func TestManagerAssignVendorUnapproved(t *testing.T) {
	f := newWorkflowFixture(t)
	vendor := f.createVendor(t, "Pending Studio", entity.VendorStatusPendingApproval)
	booking := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusAwaitingManager)

	_, err := f.manager.AssignVendor(authedContext(uuid.New()), booking.ID, &dto.AssignVendorRequest{VendorID: vendor.ID})
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestManagerAssignVendorWrongState(t *testing.T) {
	f := newWorkflowFixture(t)
	vendor := f.createVendor(t, "Glow Studio", entity.VendorStatusApproved)
	booking := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusCompleted)

	_, err := f.manager.AssignVendor(authedContext(uuid.New()), booking.ID, &dto.AssignVendorRequest{VendorID: vendor.ID})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = f.manager.AssignVendor(authedContext(uuid.New()), uuid.New(), &dto.AssignVendorRequest{VendorID: vendor.ID})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestVendorRejectBookingReturnsToManagerQueue(t *testing.T) {
	f := newWorkflowFixture(t)
	managerID := uuid.New()
	vendor := f.createVendor(t, "Glow Studio", entity.VendorStatusApproved)
	booking := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusAwaitingManager)

	_, err := f.manager.AssignVendor(authedContext(managerID), booking.ID, &dto.AssignVendorRequest{VendorID: vendor.ID})
	require.NoError(t, err)

	resp, err := f.vendor.RejectBooking(authedContext(vendor.UserID), booking.ID, &dto.RejectBookingRequest{Reason: "fully booked"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusAwaitingManager), resp.Status)

	// The vendor and manager references are cleared so it can be re-routed
	var stored entity.Booking
	require.NoError(t, f.db.First(&stored, "id = ?", booking.ID).Error)
	assert.Nil(t, stored.VendorID)
	assert.Nil(t, stored.ManagerID)

	var event entity.BookingEvent
	require.NoError(t, f.db.Where("booking_id = ? AND type = ?", booking.ID, entity.EventVendorRejected).First(&event).Error)
	assert.Equal(t, "fully booked", event.Payload["reason"])
}

func TestVendorDoubleAcceptFails(t *testing.T) {
	f := newWorkflowFixture(t)
	vendor := f.createVendor(t, "Glow Studio", entity.VendorStatusApproved)
	booking := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusAwaitingManager)

	_, err := f.manager.AssignVendor(authedContext(uuid.New()), booking.ID, &dto.AssignVendorRequest{VendorID: vendor.ID})
	require.NoError(t, err)

	ctx := authedContext(vendor.UserID)
	resp, err := f.vendor.ApproveBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusAwaitingBeautician), resp.Status)

	_, err = f.vendor.ApproveBooking(ctx, booking.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestVendorAssignBeauticianInline(t *testing.T) {
	f := newWorkflowFixture(t)
	vendor := f.createVendor(t, "Glow Studio", entity.VendorStatusApproved)
	booking := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusAwaitingManager)

	_, err := f.manager.AssignVendor(authedContext(uuid.New()), booking.ID, &dto.AssignVendorRequest{VendorID: vendor.ID})
	require.NoError(t, err)

	ctx := authedContext(vendor.UserID)
	_, err = f.vendor.ApproveBooking(ctx, booking.ID)
	require.NoError(t, err)

	resp, err := f.vendor.AssignBeautician(ctx, booking.ID, &dto.AssignBeauticianRequest{
		Beautician: &dto.BeauticianSpec{Name: "Amina", Specialization: "Makeup"},
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusConfirmed), resp.Status)
	assert.Equal(t, "Amina", resp.EmployeeName)

	// The beautician was created inline, owned by this vendor
	var employee entity.Employee
	require.NoError(t, f.db.First(&employee, "name = ?", "Amina").Error)
	require.NotNil(t, employee.VendorID)
	assert.Equal(t, vendor.ID, *employee.VendorID)
	assert.Equal(t, entity.EmployeeStatusActive, employee.Status)

	assert.Contains(t, f.eventTypes(t, booking.ID), entity.EventBeauticianAssigned)
}

func TestVendorAssignBeauticianRequiresInput(t *testing.T) {
	f := newWorkflowFixture(t)
	vendor := f.createVendor(t, "Glow Studio", entity.VendorStatusApproved)
	booking := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusAwaitingVendorResponse)
	require.NoError(t, f.db.Model(booking).Update("vendor_id", vendor.ID).Error)

	_, err := f.vendor.AssignBeautician(authedContext(vendor.UserID), booking.ID, &dto.AssignBeauticianRequest{})
	assert.ErrorIs(t, err, ErrBeauticianRequired)
}

func TestVendorWithoutProfile(t *testing.T) {
	f := newWorkflowFixture(t)
	booking := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusAwaitingVendorResponse)

	_, err := f.vendor.ApproveBooking(authedContext(uuid.New()), booking.ID)
	assert.ErrorIs(t, err, ErrVendorProfileNotFound)
}

func TestCustomerCreateBooking(t *testing.T) {
	f := newWorkflowFixture(t)
	customerID := uuid.New()
	makeup := f.createCatalogService(t, "Bridal Makeup", 75)

	resp, err := f.customer.CreateBooking(authedContext(customerID), &dto.CreateBookingRequest{
		BookingType:   string(entity.BookingTypeAtHome),
		ScheduledDate: "2026-09-15",
		ScheduledTime: "10:00",
		Services:      []dto.BookingItemRequest{{CatalogID: makeup.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// At-home bookings go straight to the manager queue
	assert.Equal(t, string(entity.BookingStatusAwaitingManager), resp.Status)
	assert.Equal(t, customerID, resp.CustomerID)
	assert.True(t, decimal.NewFromInt(150).Equal(resp.Total), "total %s", resp.Total)
	require.Len(t, resp.Services, 1)
	assert.True(t, decimal.NewFromInt(75).Equal(resp.Services[0].Price))
	assert.Equal(t, 2, resp.Services[0].Quantity)

	assert.Contains(t, f.eventTypes(t, resp.ID), entity.EventBookingCreated)
}

func TestCustomerCreateBookingInSalonStaysPending(t *testing.T) {
	f := newWorkflowFixture(t)
	makeup := f.createCatalogService(t, "Bridal Makeup", 75)

	resp, err := f.customer.CreateBooking(authedContext(uuid.New()), &dto.CreateBookingRequest{
		BookingType:   string(entity.BookingTypeInSalon),
		ScheduledDate: "2026-09-15",
		Services:      []dto.BookingItemRequest{{CatalogID: makeup.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
}

func TestCustomerCreateBookingValidation(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := authedContext(uuid.New())

	_, err := f.customer.CreateBooking(ctx, &dto.CreateBookingRequest{
		BookingType:   string(entity.BookingTypeAtHome),
		ScheduledDate: "2026-09-15",
	})
	assert.ErrorIs(t, err, ErrEmptyBooking)

	makeup := f.createCatalogService(t, "Bridal Makeup", 75)
	_, err = f.customer.CreateBooking(ctx, &dto.CreateBookingRequest{
		BookingType:   string(entity.BookingTypeAtHome),
		ScheduledDate: "15/09/2026",
		Services:      []dto.BookingItemRequest{{CatalogID: makeup.ID}},
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = f.customer.CreateBooking(ctx, &dto.CreateBookingRequest{
		BookingType:   string(entity.BookingTypeAtHome),
		ScheduledDate: "2026-09-15",
		Services:      []dto.BookingItemRequest{{CatalogID: uuid.New()}},
	})
	assert.ErrorIs(t, err, ErrCatalogItemNotFound)
}

func TestCustomerCancelBooking(t *testing.T) {
	f := newWorkflowFixture(t)
	booking := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusPending)
	ctx := authedContext(booking.CustomerID)

	require.NoError(t, f.customer.CancelBooking(ctx, booking.ID, &dto.CancelBookingRequest{Reason: "sick"}))

	var stored entity.Booking
	require.NoError(t, f.db.First(&stored, "id = ?", booking.ID).Error)
	assert.Equal(t, entity.BookingStatusCancelled, stored.Status)
	assert.Contains(t, f.eventTypes(t, booking.ID), entity.EventBookingCancelled)

	// A terminal booking cannot be cancelled again
	err := f.customer.CancelBooking(ctx, booking.ID, &dto.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCustomerCancelBookingOwnership(t *testing.T) {
	f := newWorkflowFixture(t)
	booking := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusPending)

	err := f.customer.CancelBooking(authedContext(uuid.New()), booking.ID, &dto.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotOwned)

	err = f.customer.CancelBooking(authedContext(booking.CustomerID), uuid.New(), &dto.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAtHomeAssignAndAcceptFlow(t *testing.T) {
	f := newWorkflowFixture(t)
	managerID := uuid.New()
	vendor := f.createVendor(t, "Mobile Beauty", entity.VendorStatusApproved)
	makeup := f.createCatalogService(t, "Bridal Makeup", 75)

	booking := f.createBooking(t, entity.BookingTypeAtHome, entity.BookingStatusAwaitingManager)
	require.NoError(t, f.db.Create(&entity.BookingService{
		BookingID:        booking.ID,
		CatalogServiceID: makeup.ID,
		Status:           entity.ItemStatusPending,
		Price:            makeup.Price,
		Quantity:         1,
	}).Error)

	resp, err := f.atHome.AssignVendors(authedContext(managerID), booking.ID, &dto.AssignAtHomeVendorsRequest{
		ServiceVendorID: &vendor.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusAssigned), resp.Status)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, string(entity.ItemStatusAssigned), resp.Services[0].Status)
	require.NotNil(t, resp.Services[0].AssignedVendorID)
	assert.Equal(t, vendor.ID, *resp.Services[0].AssignedVendorID)

	accepted, err := f.vendor.AcceptAssignment(authedContext(vendor.UserID), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusAccepted), accepted.Status)
	require.Len(t, accepted.Services, 1)
	assert.Equal(t, string(entity.ItemStatusAccepted), accepted.Services[0].Status)

	types := f.eventTypes(t, booking.ID)
	assert.Contains(t, types, entity.EventManagerAssignedVendor)
	assert.Contains(t, types, entity.EventVendorAccepted)
}

func TestAtHomeAssignVendorsValidation(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := authedContext(uuid.New())
	vendor := f.createVendor(t, "Mobile Beauty", entity.VendorStatusApproved)

	atHome := f.createBooking(t, entity.BookingTypeAtHome, entity.BookingStatusAwaitingManager)
	_, err := f.atHome.AssignVendors(ctx, atHome.ID, &dto.AssignAtHomeVendorsRequest{})
	assert.ErrorIs(t, err, ErrNoVendorGiven)

	inSalon := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusAwaitingManager)
	_, err = f.atHome.AssignVendors(ctx, inSalon.ID, &dto.AssignAtHomeVendorsRequest{ServiceVendorID: &vendor.ID})
	assert.ErrorIs(t, err, ErrNotAtHomeBooking)
}

func TestAtHomeAssignVendorsWithoutMatchingItems(t *testing.T) {
	f := newWorkflowFixture(t)
	vendor := f.createVendor(t, "Mobile Beauty", entity.VendorStatusApproved)

	// Products only; assigning a service vendor has nothing to route
	booking := f.createBooking(t, entity.BookingTypeAtHome, entity.BookingStatusAwaitingManager)
	require.NoError(t, f.db.Create(&entity.BookingProduct{
		BookingID:        booking.ID,
		CatalogProductID: uuid.New(),
		Status:           entity.ItemStatusPending,
		Price:            decimal.NewFromInt(20),
		Quantity:         1,
	}).Error)

	_, err := f.atHome.AssignVendors(authedContext(uuid.New()), booking.ID, &dto.AssignAtHomeVendorsRequest{
		ServiceVendorID: &vendor.ID,
	})
	assert.ErrorIs(t, err, ErrNoItemsToAssign)

	var stored entity.Booking
	require.NoError(t, f.db.First(&stored, "id = ?", booking.ID).Error)
	assert.Equal(t, entity.BookingStatusAwaitingManager, stored.Status)

	var item entity.BookingProduct
	require.NoError(t, f.db.First(&item, "booking_id = ?", booking.ID).Error)
	assert.Equal(t, entity.ItemStatusPending, item.Status)
	assert.Nil(t, item.AssignedVendorID)
}

func TestAtHomeRejectAssignmentReleasesItems(t *testing.T) {
	f := newWorkflowFixture(t)
	vendor := f.createVendor(t, "Mobile Beauty", entity.VendorStatusApproved)
	makeup := f.createCatalogService(t, "Bridal Makeup", 75)

	booking := f.createBooking(t, entity.BookingTypeAtHome, entity.BookingStatusAwaitingManager)
	require.NoError(t, f.db.Create(&entity.BookingService{
		BookingID:        booking.ID,
		CatalogServiceID: makeup.ID,
		Status:           entity.ItemStatusPending,
		Price:            makeup.Price,
		Quantity:         1,
	}).Error)

	_, err := f.atHome.AssignVendors(authedContext(uuid.New()), booking.ID, &dto.AssignAtHomeVendorsRequest{
		ServiceVendorID: &vendor.ID,
	})
	require.NoError(t, err)

	err = f.vendor.RejectAssignment(authedContext(vendor.UserID), booking.ID, &dto.RejectBookingRequest{Reason: "out of range"})
	require.NoError(t, err)

	var stored entity.Booking
	require.NoError(t, f.db.First(&stored, "id = ?", booking.ID).Error)
	assert.Equal(t, entity.BookingStatusPending, stored.Status)

	var item entity.BookingService
	require.NoError(t, f.db.First(&item, "booking_id = ?", booking.ID).Error)
	assert.Equal(t, entity.ItemStatusPending, item.Status)
	assert.Nil(t, item.AssignedVendorID)
}

func TestManagerBookingStats(t *testing.T) {
	f := newWorkflowFixture(t)
	f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusPending)
	f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusAwaitingManager)
	f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusConfirmed)
	f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusCompleted)
	f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusCancelled)

	stats, err := f.manager.GetBookingStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(2), stats.AwaitingAction)
	assert.Equal(t, int64(1), stats.Confirmed)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.Cancelled)
}

func TestManagerGetBookingEvents(t *testing.T) {
	f := newWorkflowFixture(t)
	vendor := f.createVendor(t, "Glow Studio", entity.VendorStatusApproved)
	booking := f.createBooking(t, entity.BookingTypeInSalon, entity.BookingStatusAwaitingManager)

	_, err := f.manager.AssignVendor(authedContext(uuid.New()), booking.ID, &dto.AssignVendorRequest{VendorID: vendor.ID})
	require.NoError(t, err)

	events, err := f.manager.GetBookingEvents(context.Background(), booking.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventManagerAssignedVendor, events[0].Type)

	_, err = f.manager.GetBookingEvents(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
