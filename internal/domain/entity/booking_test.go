package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsValid(t *testing.T) {
	for _, status := range AllBookingStatuses {
		assert.True(t, status.IsValid(), "expected %s to be valid", status)
	}

	assert.False(t, BookingStatus("").IsValid())
	assert.False(t, BookingStatus("DELIVERED").IsValid())
	assert.False(t, BookingStatus("pending").IsValid())
}

func TestBookingStatusIsTerminal(t *testing.T) {
	terminal := map[BookingStatus]bool{
		BookingStatusCompleted: true,
		BookingStatusRejected:  true,
		BookingStatusCancelled: true,
	}

	for _, status := range AllBookingStatuses {
		assert.Equal(t, terminal[status], status.IsTerminal(), "status %s", status)
	}
}

func TestTerminalStatusesHaveNoTransitions(t *testing.T) {
	for _, from := range AllBookingStatuses {
		if !from.IsTerminal() {
			continue
		}
		for _, to := range AllBookingStatuses {
			assert.False(t, from.CanTransitionTo(to), "%s -> %s must be forbidden", from, to)
		}
	}
}

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusAwaitingManager, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusAwaitingManager, BookingStatusAwaitingVendorResponse, true},
		{BookingStatusAwaitingVendorResponse, BookingStatusAwaitingBeautician, true},
		{BookingStatusAwaitingVendorResponse, BookingStatusAwaitingManager, true},
		{BookingStatusAwaitingBeautician, BookingStatusConfirmed, true},
		{BookingStatusAssigned, BookingStatusAccepted, true},
		{BookingStatusAssigned, BookingStatusPending, true},
		{BookingStatusAccepted, BookingStatusInProgress, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusInProgress, BookingStatusCompleted, true},

		{BookingStatusAwaitingBeautician, BookingStatusAwaitingManager, false},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusInProgress, BookingStatusConfirmed, false},
		{BookingStatusAccepted, BookingStatusAssigned, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestBookingIsAtHome(t *testing.T) {
	atHome := Booking{BookingType: BookingTypeAtHome}
	inSalon := Booking{BookingType: BookingTypeInSalon}

	assert.True(t, atHome.IsAtHome())
	assert.False(t, inSalon.IsAtHome())
}

func TestVendorLocation(t *testing.T) {
	assert.Equal(t, "Kinshasa", (&Vendor{City: "Kinshasa", Address: "12 Avenue"}).Location())
	assert.Equal(t, "12 Avenue", (&Vendor{Address: "12 Avenue"}).Location())
	assert.Equal(t, "Unknown", (&Vendor{}).Location())
}
