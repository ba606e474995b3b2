package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired       = errors.New("name is required")
	ErrPhoneRequired      = errors.New("phone is required")
	ErrDepartmentRequired = errors.New("department is required")
)

// Details holds the descriptive fields. None of them take part in the
// overlap invariant.
type Details struct {
	name       string
	phone      string
	department string
	title      *string
}

func NewDetails(name, phone, department string, title *string) (Details, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	department = strings.TrimSpace(department)

	switch {
	case name == "":
		return Details{}, ErrNameRequired
	case phone == "":
		return Details{}, ErrPhoneRequired
	case department == "":
		return Details{}, ErrDepartmentRequired
	}

	var t *string
	if title != nil {
		if trimmed := strings.TrimSpace(*title); trimmed != "" {
			t = &trimmed
		}
	}

	return Details{name: name, phone: phone, department: department, title: t}, nil
}

func (d Details) Name() string       { return d.name }
func (d Details) Phone() string      { return d.phone }
func (d Details) Department() string { return d.department }
func (d Details) Title() *string     { return d.title }

// Booking is Active on creation. Cancel moves it to Cancelled for good;
// deletion removes the record.
type Booking struct {
	id        uuid.UUID
	slot      Slot
	details   Details
	isActive  bool
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(slot Slot, details Details, createdBy uuid.UUID, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		slot:      slot,
		details:   details,
		isActive:  true,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructBooking(
	id uuid.UUID,
	slot Slot,
	details Details,
	isActive bool,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		slot:      slot,
		details:   details,
		isActive:  isActive,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reschedule moves the booking. The caller must have cleared the new slot
// with the availability check first.
func (b *Booking) Reschedule(slot Slot, details Details, now time.Time) {
	b.slot = slot
	b.details = details
	b.updatedAt = now
}

// Cancel is idempotent. It reports whether the state changed.
func (b *Booking) Cancel(now time.Time) bool {
	if !b.isActive {
		return false
	}
	b.isActive = false
	b.updatedAt = now
	return true
}

// Occupies reports whether b is an active booking overlapping slot.
func (b *Booking) Occupies(slot Slot) bool {
	return b.isActive && b.slot.SameDay(slot) && b.slot.interval.Overlaps(slot.interval)
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Slot() Slot           { return b.slot }
func (b *Booking) RoomNumber() int      { return b.slot.roomNumber }
func (b *Booking) Date() Date           { return b.slot.date }
func (b *Booking) Interval() Interval   { return b.slot.interval }
func (b *Booking) Details() Details     { return b.details }
func (b *Booking) IsActive() bool       { return b.isActive }
func (b *Booking) CreatedBy() uuid.UUID { return b.createdBy }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Filter selects candidates for the availability check: same room, same
// date, a given activity state, optionally minus one booking.
type Filter struct {
	RoomNumber int
	Date       Date
	IsActive   bool
	ExcludeID  *uuid.UUID
}

func (f Filter) Matches(b *Booking) bool {
	if b.RoomNumber() != f.RoomNumber || !b.Date().Equal(f.Date) || b.IsActive() != f.IsActive {
		return false
	}
	return f.ExcludeID == nil || b.ID() != *f.ExcludeID
}
