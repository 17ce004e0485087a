package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemStatus represents the vendor-response state of a single line item.
// Items are never deleted: a rejection clears the assigned vendor and resets
// the item to PENDING for re-routing.
type ItemStatus string

const (
	ItemStatusPending  ItemStatus = "PENDING"
	ItemStatusAssigned ItemStatus = "ASSIGNED"
	ItemStatusAccepted ItemStatus = "ACCEPTED"
	ItemStatusRejected ItemStatus = "REJECTED"
)

// BookingService is one requested service within a booking. For at-home
// bookings each item carries its own vendor assignment.
type BookingService struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	CatalogServiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"catalog_service_id"`
	AssignedVendorID *uuid.UUID      `gorm:"type:uuid;index" json:"assigned_vendor_id,omitempty"`
	Status           ItemStatus      `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity         int             `gorm:"not null;default:1" json:"quantity"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	CatalogService CatalogService `gorm:"foreignKey:CatalogServiceID" json:"catalog_service,omitempty"`
	AssignedVendor *Vendor        `gorm:"foreignKey:AssignedVendorID" json:"assigned_vendor,omitempty"`
}

func (BookingService) TableName() string {
	return "booking_services"
}

// BookingProduct is one requested product within a booking.
type BookingProduct struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	CatalogProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"catalog_product_id"`
	AssignedVendorID *uuid.UUID      `gorm:"type:uuid;index" json:"assigned_vendor_id,omitempty"`
	Status           ItemStatus      `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity         int             `gorm:"not null;default:1" json:"quantity"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	CatalogProduct CatalogProduct `gorm:"foreignKey:CatalogProductID" json:"catalog_product,omitempty"`
	AssignedVendor *Vendor        `gorm:"foreignKey:AssignedVendorID" json:"assigned_vendor,omitempty"`
}

func (BookingProduct) TableName() string {
	return "booking_products"
}
