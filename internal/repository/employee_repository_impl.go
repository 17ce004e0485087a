package repository

import (
	"errors"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	domainRepo "github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type employeeRepository struct{}

func NewEmployeeRepository() domainRepo.EmployeeRepository {
	return &employeeRepository{}
}

func (r *employeeRepository) Create(db *gorm.DB, employee *entity.Employee) error {
	return db.Create(employee).Error
}

func (r *employeeRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.Where("id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.Where("id = ? AND status = ?", id, entity.EmployeeStatusActive).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByStatus(db *gorm.DB, status entity.EmployeeStatus, vendorID *uuid.UUID) ([]entity.Employee, error) {
	query := db.Where("status = ?", status)
	if vendorID != nil {
		query = query.Where("vendor_id = ?", *vendorID)
	}

	var employees []entity.Employee
	if err := query.Order("name ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}
