package service

import (
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EventService appends workflow transitions to the booking event log. The log
// is best-effort: append failures are logged and swallowed so a broken audit
// trail never fails the transition that produced it.
type EventService interface {
	Append(db *gorm.DB, bookingID uuid.UUID, eventType string, actorID *uuid.UUID, payload entity.JSON)
	History(db *gorm.DB, bookingID uuid.UUID) ([]entity.BookingEvent, error)
}

type eventService struct {
	log       *logrus.Logger
	eventRepo repository.BookingEventRepository
}

func NewEventService(log *logrus.Logger, eventRepo repository.BookingEventRepository) EventService {
	return &eventService{
		log:       log,
		eventRepo: eventRepo,
	}
}

func (s *eventService) Append(db *gorm.DB, bookingID uuid.UUID, eventType string, actorID *uuid.UUID, payload entity.JSON) {
	event := &entity.BookingEvent{
		BookingID: bookingID,
		Type:      eventType,
		ActorID:   actorID,
		Payload:   payload,
	}

	if err := s.eventRepo.Create(db, event); err != nil {
		s.log.WithFields(logrus.Fields{
			"booking_id": bookingID,
			"event_type": eventType,
		}).Warnf("Failed to append booking event: %+v", err)
	}
}

func (s *eventService) History(db *gorm.DB, bookingID uuid.UUID) ([]entity.BookingEvent, error) {
	return s.eventRepo.FindByBookingID(db, bookingID)
}
