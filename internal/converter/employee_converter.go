package converter

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
)

// EmployeeToResponse converts an Employee entity to EmployeeResponse DTO
func EmployeeToResponse(employee *entity.Employee) *dto.EmployeeResponse {
	if employee == nil {
		return nil
	}

	return &dto.EmployeeResponse{
		ID:             employee.ID,
		VendorID:       employee.VendorID,
		Name:           employee.Name,
		Role:           employee.Role,
		Email:          employee.Email,
		Phone:          employee.Phone,
		Experience:     employee.Experience,
		Specialization: employee.Specialization,
		Status:         string(employee.Status),
		CreatedAt:      employee.CreatedAt,
	}
}

// EmployeesToResponses converts a slice of Employee entities
func EmployeesToResponses(employees []entity.Employee) []dto.EmployeeResponse {
	responses := make([]dto.EmployeeResponse, len(employees))
	for i, employee := range employees {
		resp := EmployeeToResponse(&employee)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
