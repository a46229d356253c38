package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func heldBy(userID int, expires time.Time) *SeatStatus {
	return &SeatStatus{
		Status:             SeatStateReserved,
		ReservedBy:         &userID,
		ReservationExpires: &expires,
	}
}

func TestSeatStatus_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Active hold", func(t *testing.T) {
		s := heldBy(7, now.Add(time.Minute))

		assert.Equal(t, SeatStateReserved, s.EffectiveState(now))
		assert.True(t, s.IsActiveHoldBy(7, now))
		assert.False(t, s.IsActiveHoldBy(8, now))
		assert.False(t, s.IsExpiredHold(now))
	})

	t.Run("Expired hold reads as available", func(t *testing.T) {
		s := heldBy(7, now.Add(-time.Second))

		assert.Equal(t, SeatStateAvailable, s.EffectiveState(now))
		assert.False(t, s.IsActiveHoldBy(7, now))
		assert.True(t, s.IsExpiredHold(now))
	})

	t.Run("Hold expiring exactly now is already reclaimable", func(t *testing.T) {
		s := heldBy(7, now)

		assert.Equal(t, SeatStateAvailable, s.EffectiveState(now))
		assert.False(t, s.IsActiveHoldBy(7, now))
		assert.True(t, s.IsExpiredHold(now))
	})

	t.Run("Booked never expires", func(t *testing.T) {
		s := &SeatStatus{Status: SeatStateBooked}

		assert.Equal(t, SeatStateBooked, s.EffectiveState(now.Add(time.Hour)))
		assert.False(t, s.IsExpiredHold(now))
	})
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusConfirmed))
	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCancelled))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusConfirmed))
	assert.False(t, BookingStatusCompleted.CanTransitionTo(BookingStatusCancelled))
}

func TestCreateBookingRequest_SeatIDs(t *testing.T) {
	req := CreateBookingRequest{Seats: []BookingSeatRequest{{SeatID: 3}, {SeatID: 1}, {SeatID: 3}}}

	assert.Equal(t, []int{3, 1}, req.SeatIDs())
}
