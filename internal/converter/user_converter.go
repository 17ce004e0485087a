package converter

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		RoleID:    user.RoleID,
		Role:      user.Role.RoleName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
