package repository

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingEventRepository interface {
	Create(db *gorm.DB, event *entity.BookingEvent) error
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.BookingEvent, error)
}
