package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeStatus represents whether a beautician can take bookings
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
)

// Employee represents a beautician or other service-delivery staff member,
// owned by a vendor (or created by a manager, in which case VendorID is nil).
type Employee struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VendorID       *uuid.UUID     `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	Role           string         `gorm:"type:varchar(100);default:'Beautician'" json:"role"`
	Email          string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone          string         `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Experience     int            `gorm:"default:0" json:"experience"`
	Specialization string         `gorm:"type:varchar(255)" json:"specialization,omitempty"`
	Status         EmployeeStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index" json:"status"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Vendor *Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

// IsActive checks whether the employee can be assigned to bookings
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}
