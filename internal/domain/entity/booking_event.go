package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingEvent is an immutable audit record of a workflow transition. Rows
// are append-only: nothing in the system updates or deletes them.
type BookingEvent struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID uuid.UUID  `gorm:"type:uuid;not null;index" json:"booking_id"`
	Type      string     `gorm:"type:varchar(100);not null;index" json:"type"`
	ActorID   *uuid.UUID `gorm:"type:uuid;index" json:"actor_id,omitempty"`
	Payload   JSON       `gorm:"type:jsonb" json:"payload,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (BookingEvent) TableName() string {
	return "booking_events"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Workflow event types
const (
	EventBookingCreated        = "BOOKING_CREATED"
	EventBookingCancelled      = "BOOKING_CANCELLED"
	EventManagerAssignedVendor = "MANAGER_ASSIGNED_VENDOR"
	EventVendorAccepted        = "VENDOR_ACCEPTED"
	EventVendorRejected        = "VENDOR_REJECTED"
	EventBeauticianAssigned    = "BEAUTICIAN_ASSIGNED"
)
