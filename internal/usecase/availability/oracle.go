// Package availability answers whether a room is free for a half-open
// interval on a given date.
package availability

import (
	"context"

	"room-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Finder is the single query primitive the oracle needs: all bookings for a
// room and date in a given activity state, optionally minus one id.
type Finder interface {
	FindMatching(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error)
}

type Oracle struct {
	finder Finder
}

func NewOracle(finder Finder) Oracle {
	return Oracle{finder: finder}
}

// Conflicts returns the active bookings that overlap slot. excludeID lets an
// update ignore the booking being moved.
func (o Oracle) Conflicts(ctx context.Context, slot booking.Slot, excludeID *uuid.UUID) ([]*booking.Booking, error) {
	candidates, err := o.finder.FindMatching(ctx, booking.Filter{
		RoomNumber: slot.RoomNumber(),
		Date:       slot.Date(),
		IsActive:   true,
		ExcludeID:  excludeID,
	})
	if err != nil {
		return nil, err
	}

	var overlapping []*booking.Booking
	for _, c := range candidates {
		if c.Interval().Overlaps(slot.Interval()) {
			overlapping = append(overlapping, c)
		}
	}
	return overlapping, nil
}

// Check reports availability. A lookup failure yields (false, err): callers
// that only look at the boolean can never read an error as "free".
func (o Oracle) Check(ctx context.Context, slot booking.Slot, excludeID *uuid.UUID) (bool, error) {
	overlapping, err := o.Conflicts(ctx, slot, excludeID)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}

func (o Oracle) IsAvailable(ctx context.Context, slot booking.Slot, excludeID *uuid.UUID) bool {
	ok, err := o.Check(ctx, slot, excludeID)
	return err == nil && ok
}
