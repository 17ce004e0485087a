package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RejectVendorRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type CreateVendorServiceRequest struct {
	CatalogServiceID uuid.UUID       `json:"catalog_service_id" validate:"required"`
	Price            decimal.Decimal `json:"price" validate:"required"`
}

type CreateVendorProductRequest struct {
	CatalogProductID uuid.UUID       `json:"catalog_product_id" validate:"required"`
	Price            decimal.Decimal `json:"price" validate:"required"`
}

// Response DTOs

type VendorResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	ShopName        string    `json:"shop_name"`
	OwnerName       string    `json:"owner_name,omitempty"`
	Address         string    `json:"address,omitempty"`
	City            string    `json:"city,omitempty"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	OpeningTime     string    `json:"opening_time,omitempty"`
	ClosingTime     string    `json:"closing_time,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type VendorListResponse struct {
	Vendors []VendorResponse `json:"vendors"`
	Total   int              `json:"total"`
}

// VendorServiceResponse is one entry in a vendor's own service listing.
type VendorServiceResponse struct {
	ID               uuid.UUID       `json:"id"`
	CatalogServiceID uuid.UUID       `json:"catalog_service_id"`
	Name             string          `json:"name,omitempty"`
	Category         string          `json:"category"`
	Price            decimal.Decimal `json:"price"`
	CreatedAt        time.Time       `json:"created_at"`
}

type VendorProductResponse struct {
	ID               uuid.UUID       `json:"id"`
	CatalogProductID uuid.UUID       `json:"catalog_product_id"`
	Name             string          `json:"name,omitempty"`
	Category         string          `json:"category"`
	Price            decimal.Decimal `json:"price"`
	CreatedAt        time.Time       `json:"created_at"`
}

type VendorOfferingListResponse struct {
	Services []VendorServiceResponse `json:"services"`
	Products []VendorProductResponse `json:"products"`
}

// EligibleVendorResponse is one matching-engine candidate.
type EligibleVendorResponse struct {
	ID        uuid.UUID `json:"id"`
	ShopName  string    `json:"shop_name"`
	OwnerName string    `json:"owner_name,omitempty"`
	Location  string    `json:"location"`
	MatchType string    `json:"matchType"`
	Inventory string    `json:"inventory"`
}

type EligibleVendorsResponse struct {
	ServiceVendors []EligibleVendorResponse `json:"serviceVendors"`
	ProductVendors []EligibleVendorResponse `json:"productVendors"`
}
