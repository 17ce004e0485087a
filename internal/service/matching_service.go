package service

import (
	"fmt"
	"strings"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Match types annotating eligible-vendor results. A vendor found through the
// exact or category tiers is a "match"; a vendor returned only because no
// tier produced candidates is a "fallback".
const (
	MatchTypeMatch    = "match"
	MatchTypeFallback = "fallback"
)

// VendorMatch is one eligible vendor with its inventory summary.
type VendorMatch struct {
	Vendor    entity.Vendor
	MatchType string
	Inventory string
}

// MatchResult holds eligible vendors per item kind.
type MatchResult struct {
	ServiceVendors []VendorMatch
	ProductVendors []VendorMatch
}

// MatchingService computes the set of vendors eligible to serve a booking's
// requested catalog items. The match is recall-maximizing, not ranked: it
// widens through three tiers and stops at the first tier that produces
// candidates, so the result is empty only when no approved vendor exists at
// all. Only APPROVED vendors are ever returned.
type MatchingService interface {
	EligibleVendors(db *gorm.DB, services []entity.BookingService, products []entity.BookingProduct) (*MatchResult, error)
}

type matchingService struct {
	log          *logrus.Logger
	vendorRepo   repository.VendorRepository
	catalogRepo  repository.CatalogRepository
	offeringRepo repository.VendorOfferingRepository
}

func NewMatchingService(
	log *logrus.Logger,
	vendorRepo repository.VendorRepository,
	catalogRepo repository.CatalogRepository,
	offeringRepo repository.VendorOfferingRepository,
) MatchingService {
	return &matchingService{
		log:          log,
		vendorRepo:   vendorRepo,
		catalogRepo:  catalogRepo,
		offeringRepo: offeringRepo,
	}
}

func (s *matchingService) EligibleVendors(db *gorm.DB, services []entity.BookingService, products []entity.BookingProduct) (*MatchResult, error) {
	serviceCatalogIDs := make([]uuid.UUID, 0, len(services))
	for _, item := range services {
		serviceCatalogIDs = append(serviceCatalogIDs, item.CatalogServiceID)
	}
	productCatalogIDs := make([]uuid.UUID, 0, len(products))
	for _, item := range products {
		productCatalogIDs = append(productCatalogIDs, item.CatalogProductID)
	}

	serviceVendors, err := s.matchKind(db, serviceCatalogIDs, s.serviceTiers())
	if err != nil {
		return nil, err
	}
	productVendors, err := s.matchKind(db, productCatalogIDs, s.productTiers())
	if err != nil {
		return nil, err
	}

	return &MatchResult{
		ServiceVendors: serviceVendors,
		ProductVendors: productVendors,
	}, nil
}

// kindTiers are the per-kind lookups the tiered match runs against. Services
// and products share the algorithm but hit different offering tables.
type kindTiers struct {
	byCatalogID  func(db *gorm.DB, catalogIDs []uuid.UUID) ([]uuid.UUID, error)
	categoriesOf func(db *gorm.DB, catalogIDs []uuid.UUID) ([]string, error)
	byCategory   func(db *gorm.DB, categories []string) ([]uuid.UUID, error)
}

func (s *matchingService) serviceTiers() kindTiers {
	return kindTiers{
		byCatalogID: s.offeringRepo.FindVendorIDsByCatalogServiceIDs,
		categoriesOf: func(db *gorm.DB, catalogIDs []uuid.UUID) ([]string, error) {
			entries, err := s.catalogRepo.FindServicesByIDs(db, catalogIDs)
			if err != nil {
				return nil, err
			}
			categories := make([]string, 0, len(entries))
			for _, entry := range entries {
				categories = append(categories, entry.Category)
			}
			return categories, nil
		},
		byCategory: s.offeringRepo.FindVendorIDsByServiceCategories,
	}
}

func (s *matchingService) productTiers() kindTiers {
	return kindTiers{
		byCatalogID: s.offeringRepo.FindVendorIDsByCatalogProductIDs,
		categoriesOf: func(db *gorm.DB, catalogIDs []uuid.UUID) ([]string, error) {
			entries, err := s.catalogRepo.FindProductsByIDs(db, catalogIDs)
			if err != nil {
				return nil, err
			}
			categories := make([]string, 0, len(entries))
			for _, entry := range entries {
				categories = append(categories, entry.Category)
			}
			return categories, nil
		},
		byCategory: s.offeringRepo.FindVendorIDsByProductCategories,
	}
}

// matchKind runs the tiered match for one item kind. The first tier that
// yields candidates wins; vendors the tiers surface are then filtered to
// APPROVED and deduplicated before the detail lookup.
func (s *matchingService) matchKind(db *gorm.DB, catalogIDs []uuid.UUID, tiers kindTiers) ([]VendorMatch, error) {
	matchType := MatchTypeMatch

	// Level 0: vendors offering the exact catalog entries.
	candidateIDs, err := tiers.byCatalogID(db, catalogIDs)
	if err != nil {
		return nil, err
	}

	// Level 1: loose category match against the requested entries' categories.
	// A failed category lookup degrades to an empty category set rather than
	// failing the whole match.
	if len(candidateIDs) == 0 && len(catalogIDs) > 0 {
		categories, err := tiers.categoriesOf(db, catalogIDs)
		if err != nil {
			s.log.Warnf("Category lookup failed, skipping category match: %+v", err)
			categories = nil
		}
		categories = nonEmptyCategories(categories)
		if len(categories) > 0 {
			candidateIDs, err = tiers.byCategory(db, categories)
			if err != nil {
				return nil, err
			}
		}
	}

	// Level 2: every approved vendor, flagged as fallback.
	if len(candidateIDs) == 0 {
		matchType = MatchTypeFallback
		candidateIDs, err = s.vendorRepo.FindApprovedIDs(db)
		if err != nil {
			return nil, err
		}
	}

	vendors, err := s.vendorRepo.FindApprovedByIDs(db, dedupeIDs(candidateIDs))
	if err != nil {
		return nil, err
	}

	return s.annotate(db, vendors, matchType)
}

// annotate attaches the match type and a one-line inventory summary to each
// eligible vendor.
func (s *matchingService) annotate(db *gorm.DB, vendors []entity.Vendor, matchType string) ([]VendorMatch, error) {
	if len(vendors) == 0 {
		return []VendorMatch{}, nil
	}

	vendorIDs := make([]uuid.UUID, 0, len(vendors))
	for _, vendor := range vendors {
		vendorIDs = append(vendorIDs, vendor.ID)
	}

	serviceOfferings, err := s.offeringRepo.FindServicesByVendorIDs(db, vendorIDs)
	if err != nil {
		return nil, err
	}
	productOfferings, err := s.offeringRepo.FindProductsByVendorIDs(db, vendorIDs)
	if err != nil {
		return nil, err
	}

	serviceNames := map[uuid.UUID][]string{}
	for _, offering := range serviceOfferings {
		serviceNames[offering.VendorID] = append(serviceNames[offering.VendorID], offering.CatalogService.Name)
	}
	productNames := map[uuid.UUID][]string{}
	for _, offering := range productOfferings {
		productNames[offering.VendorID] = append(productNames[offering.VendorID], offering.CatalogProduct.Name)
	}

	matches := make([]VendorMatch, 0, len(vendors))
	for _, vendor := range vendors {
		matches = append(matches, VendorMatch{
			Vendor:    vendor,
			MatchType: matchType,
			Inventory: inventorySummary(serviceNames[vendor.ID], productNames[vendor.ID]),
		})
	}
	return matches, nil
}

func inventorySummary(serviceNames, productNames []string) string {
	parts := make([]string, 0, 2)
	if len(serviceNames) > 0 {
		parts = append(parts, fmt.Sprintf("%d services: %s", len(serviceNames), strings.Join(serviceNames, ", ")))
	}
	if len(productNames) > 0 {
		parts = append(parts, fmt.Sprintf("%d products: %s", len(productNames), strings.Join(productNames, ", ")))
	}
	if len(parts) == 0 {
		return "No listed inventory"
	}
	return strings.Join(parts, "; ")
}

func nonEmptyCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	for _, category := range categories {
		if strings.TrimSpace(category) != "" {
			out = append(out, category)
		}
	}
	return out
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
