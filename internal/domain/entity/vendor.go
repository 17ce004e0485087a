package entity

import (
	"time"

	"github.com/google/uuid"
)

// VendorStatus represents the approval state of a vendor
type VendorStatus string

const (
	VendorStatusPendingApproval VendorStatus = "PENDING_APPROVAL"
	VendorStatusApproved        VendorStatus = "APPROVED"
	VendorStatusRejected        VendorStatus = "REJECTED"
)

// Vendor represents a service-provider business. Vendors are created at
// registration in PENDING_APPROVAL and are never hard-deleted; only APPROVED
// vendors are eligible for assignment or public listing.
type Vendor struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	ShopName        string       `gorm:"type:varchar(255);not null" json:"shop_name"`
	Address         string       `gorm:"type:text" json:"address,omitempty"`
	City            string       `gorm:"type:varchar(100);index" json:"city,omitempty"`
	Status          VendorStatus `gorm:"type:varchar(20);not null;default:'PENDING_APPROVAL';index" json:"status"`
	RejectionReason string       `gorm:"type:text" json:"rejection_reason,omitempty"`
	OpeningTime     string       `gorm:"type:varchar(10)" json:"opening_time,omitempty"`
	ClosingTime     string       `gorm:"type:varchar(10)" json:"closing_time,omitempty"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User     User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Services []VendorService `gorm:"foreignKey:VendorID" json:"services,omitempty"`
	Products []VendorProduct `gorm:"foreignKey:VendorID" json:"products,omitempty"`
}

func (Vendor) TableName() string {
	return "vendors"
}

// IsApproved checks whether the vendor may receive assignments
func (v *Vendor) IsApproved() bool {
	return v.Status == VendorStatusApproved
}

// Location returns the short display location, preferring city over address.
func (v *Vendor) Location() string {
	if v.City != "" {
		return v.City
	}
	if v.Address != "" {
		return v.Address
	}
	return "Unknown"
}
