package service

import (
	"fmt"
	"io"
	"testing"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/repository"

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
	`CREATE TABLE booking_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		booking_id TEXT,
		type TEXT,
		actor_id TEXT,
		payload TEXT,
		created_at DATETIME
	)`,
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestMatchingService() MatchingService {
	return NewMatchingService(
		testLogger(),
		repository.NewVendorRepository(),
		repository.NewCatalogRepository(),
		repository.NewVendorOfferingRepository(),
	)
}

func createTestVendor(t *testing.T, db *gorm.DB, shopName string, status entity.VendorStatus) *entity.Vendor {
	t.Helper()

	vendor := &entity.Vendor{
		UserID:   uuid.New(),
		ShopName: shopName,
		City:     "Kinshasa",
		Status:   status,
	}
	require.NoError(t, db.Create(vendor).Error)
	return vendor
}

func createTestCatalogService(t *testing.T, db *gorm.DB, name, category string) *entity.CatalogService {
	t.Helper()

	entry := &entity.CatalogService{
		Name:     name,
		Category: category,
		Price:    decimal.NewFromInt(50),
		IsActive: true,
	}
	require.NoError(t, db.Create(entry).Error)
	return entry
}

func createTestCatalogProduct(t *testing.T, db *gorm.DB, name, category string) *entity.CatalogProduct {
	t.Helper()

	entry := &entity.CatalogProduct{
		Name:     name,
		Category: category,
		Price:    decimal.NewFromInt(20),
		IsActive: true,
	}
	require.NoError(t, db.Create(entry).Error)
	return entry
}

func offerService(t *testing.T, db *gorm.DB, vendor *entity.Vendor, catalog *entity.CatalogService) {
	t.Helper()

	require.NoError(t, db.Create(&entity.VendorService{
		VendorID:         vendor.ID,
		CatalogServiceID: catalog.ID,
		Category:         catalog.Category,
		Price:            catalog.Price,
	}).Error)
}

func offerProduct(t *testing.T, db *gorm.DB, vendor *entity.Vendor, catalog *entity.CatalogProduct) {
	t.Helper()

	require.NoError(t, db.Create(&entity.VendorProduct{
		VendorID:         vendor.ID,
		CatalogProductID: catalog.ID,
		Category:         catalog.Category,
		Price:            catalog.Price,
	}).Error)
}

func serviceItems(catalogs ...*entity.CatalogService) []entity.BookingService {
	items := make([]entity.BookingService, 0, len(catalogs))
	for _, c := range catalogs {
		items = append(items, entity.BookingService{CatalogServiceID: c.ID})
	}
	return items
}

func TestEligibleVendorsExactMatch(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMatchingService()

	makeup := createTestCatalogService(t, db, "Bridal Makeup", "Makeup")
	exact := createTestVendor(t, db, "Glow Studio", entity.VendorStatusApproved)
	other := createTestVendor(t, db, "Other Salon", entity.VendorStatusApproved)
	offerService(t, db, exact, makeup)

	result, err := svc.EligibleVendors(db, serviceItems(makeup), nil)
	require.NoError(t, err)

	// A direct match never widens to the fallback tier
	require.Len(t, result.ServiceVendors, 1)
	assert.Equal(t, exact.ID, result.ServiceVendors[0].Vendor.ID)
	assert.Equal(t, MatchTypeMatch, result.ServiceVendors[0].MatchType)
	for _, match := range result.ServiceVendors {
		assert.NotEqual(t, other.ID, match.Vendor.ID)
	}
}

func TestEligibleVendorsCategoryMatch(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMatchingService()

	requested := createTestCatalogService(t, db, "Keratin Treatment", "Hair")
	related := createTestCatalogService(t, db, "Hair Spa", "Hair Care")
	vendor := createTestVendor(t, db, "Hair Palace", entity.VendorStatusApproved)
	offerService(t, db, vendor, related)

	result, err := svc.EligibleVendors(db, serviceItems(requested), nil)
	require.NoError(t, err)

	require.Len(t, result.ServiceVendors, 1)
	assert.Equal(t, vendor.ID, result.ServiceVendors[0].Vendor.ID)
	assert.Equal(t, MatchTypeMatch, result.ServiceVendors[0].MatchType)
}

func TestEligibleVendorsFallback(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMatchingService()

	requested := createTestCatalogService(t, db, "Bridal Makeup", "Makeup")
	a := createTestVendor(t, db, "Salon A", entity.VendorStatusApproved)
	b := createTestVendor(t, db, "Salon B", entity.VendorStatusApproved)
	c := createTestVendor(t, db, "Salon C", entity.VendorStatusApproved)
	createTestVendor(t, db, "Pending Salon", entity.VendorStatusPendingApproval)

	result, err := svc.EligibleVendors(db, serviceItems(requested), nil)
	require.NoError(t, err)

	require.Len(t, result.ServiceVendors, 3)
	got := map[uuid.UUID]bool{}
	for _, match := range result.ServiceVendors {
		assert.Equal(t, MatchTypeFallback, match.MatchType)
		got[match.Vendor.ID] = true
	}
	assert.True(t, got[a.ID])
	assert.True(t, got[b.ID])
	assert.True(t, got[c.ID])
}

func TestEligibleVendorsExcludesUnapproved(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMatchingService()

	makeup := createTestCatalogService(t, db, "Bridal Makeup", "Makeup")
	approved := createTestVendor(t, db, "Approved Salon", entity.VendorStatusApproved)
	pending := createTestVendor(t, db, "Pending Salon", entity.VendorStatusPendingApproval)
	offerService(t, db, approved, makeup)
	offerService(t, db, pending, makeup)

	result, err := svc.EligibleVendors(db, serviceItems(makeup), nil)
	require.NoError(t, err)

	require.Len(t, result.ServiceVendors, 1)
	assert.Equal(t, approved.ID, result.ServiceVendors[0].Vendor.ID)
}

func TestEligibleVendorsDeduplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMatchingService()

	makeup := createTestCatalogService(t, db, "Bridal Makeup", "Makeup")
	hair := createTestCatalogService(t, db, "Hair Styling", "Hair")
	vendor := createTestVendor(t, db, "Full Service Salon", entity.VendorStatusApproved)
	offerService(t, db, vendor, makeup)
	offerService(t, db, vendor, hair)

	result, err := svc.EligibleVendors(db, serviceItems(makeup, hair), nil)
	require.NoError(t, err)

	require.Len(t, result.ServiceVendors, 1)
	assert.Equal(t, vendor.ID, result.ServiceVendors[0].Vendor.ID)
}

func TestEligibleVendorsPerKindResults(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMatchingService()

	makeup := createTestCatalogService(t, db, "Bridal Makeup", "Makeup")
	shampoo := createTestCatalogProduct(t, db, "Argan Shampoo", "Hair Products")
	serviceVendor := createTestVendor(t, db, "Makeup Studio", entity.VendorStatusApproved)
	productVendor := createTestVendor(t, db, "Beauty Shop", entity.VendorStatusApproved)
	offerService(t, db, serviceVendor, makeup)
	offerProduct(t, db, productVendor, shampoo)

	result, err := svc.EligibleVendors(db,
		serviceItems(makeup),
		[]entity.BookingProduct{{CatalogProductID: shampoo.ID}},
	)
	require.NoError(t, err)

	require.Len(t, result.ServiceVendors, 1)
	assert.Equal(t, serviceVendor.ID, result.ServiceVendors[0].Vendor.ID)
	require.Len(t, result.ProductVendors, 1)
	assert.Equal(t, productVendor.ID, result.ProductVendors[0].Vendor.ID)
}

func TestEligibleVendorsInventorySummary(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestMatchingService()

	makeup := createTestCatalogService(t, db, "Bridal Makeup", "Makeup")
	shampoo := createTestCatalogProduct(t, db, "Argan Shampoo", "Hair Products")
	stocked := createTestVendor(t, db, "Stocked Salon", entity.VendorStatusApproved)
	empty := createTestVendor(t, db, "Empty Salon", entity.VendorStatusApproved)
	offerService(t, db, stocked, makeup)
	offerProduct(t, db, stocked, shampoo)

	// No vendor offers this entry, so both vendors come back as fallback
	requested := createTestCatalogService(t, db, "Pedicure", "Nails")
	result, err := svc.EligibleVendors(db, serviceItems(requested), nil)
	require.NoError(t, err)
	require.Len(t, result.ServiceVendors, 2)

	byID := map[uuid.UUID]VendorMatch{}
	for _, match := range result.ServiceVendors {
		byID[match.Vendor.ID] = match
	}
	assert.Equal(t, "1 services: Bridal Makeup; 1 products: Argan Shampoo", byID[stocked.ID].Inventory)
	assert.Equal(t, "No listed inventory", byID[empty.ID].Inventory)
}

func TestInventorySummary(t *testing.T) {
	assert.Equal(t, "No listed inventory", inventorySummary(nil, nil))
	assert.Equal(t, "2 services: A, B", inventorySummary([]string{"A", "B"}, nil))
	assert.Equal(t, "1 products: C", inventorySummary(nil, []string{"C"}))
	assert.Equal(t, "1 services: A; 1 products: C", inventorySummary([]string{"A"}, []string{"C"}))
}
