package dto

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeResponse struct {
	ID             uuid.UUID  `json:"id"`
	VendorID       *uuid.UUID `json:"vendor_id,omitempty"`
	Name           string     `json:"name"`
	Role           string     `json:"role"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Experience     int        `json:"experience"`
	Specialization string     `json:"specialization,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}
