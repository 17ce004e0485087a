package repository

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(db *gorm.DB, employee *entity.Employee) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Employee, error)
	// FindActiveByID resolves an employee only if its status is ACTIVE.
	FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.Employee, error)
	// FindByStatus lists employees by status, optionally scoped to a vendor,
	// ordered by name.
	FindByStatus(db *gorm.DB, status entity.EmployeeStatus, vendorID *uuid.UUID) ([]entity.Employee, error)
}
