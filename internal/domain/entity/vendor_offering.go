package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorService links a vendor to a catalog service it offers. Category is
// denormalized from the catalog entry so the matching engine can do soft
// category matches without a join.
type VendorService struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VendorID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendor_id"`
	CatalogServiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"catalog_service_id"`
	Category         string          `gorm:"type:varchar(100);index" json:"category"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Vendor         Vendor         `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	CatalogService CatalogService `gorm:"foreignKey:CatalogServiceID" json:"catalog_service,omitempty"`
}

func (VendorService) TableName() string {
	return "vendor_services"
}

// VendorProduct links a vendor to a catalog product it stocks.
type VendorProduct struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VendorID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"vendor_id"`
	CatalogProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"catalog_product_id"`
	Category         string          `gorm:"type:varchar(100);index" json:"category"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Vendor         Vendor         `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	CatalogProduct CatalogProduct `gorm:"foreignKey:CatalogProductID" json:"catalog_product,omitempty"`
}

func (VendorProduct) TableName() string {
	return "vendor_products"
}
