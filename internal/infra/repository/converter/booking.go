package converter

import (
	"fmt"
	"math"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"
)

func BookingToInsertParams(b *booking.Booking) db.InsertBookingParams {
	d := b.Details()
	return db.InsertBookingParams{
		ID:          b.ID(),
		RoomNumber:  RoomNumberToInfra(b.RoomNumber()),
		Name:        d.Name(),
		BookingDate: b.Date().Time(),
		StartMinute: int32(b.Interval().Start().Minutes()),
		EndMinute:   int32(b.Interval().End().Minutes()),
		Phone:       d.Phone(),
		Department:  d.Department(),
		Title:       pgconv.TextFromPtr(d.Title()),
		IsActive:    b.IsActive(),
		CreatedBy:   b.CreatedBy(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func BookingToUpdateParams(b *booking.Booking) db.UpdateBookingParams {
	d := b.Details()
	return db.UpdateBookingParams{
		ID:          b.ID(),
		RoomNumber:  RoomNumberToInfra(b.RoomNumber()),
		Name:        d.Name(),
		BookingDate: b.Date().Time(),
		StartMinute: int32(b.Interval().Start().Minutes()),
		EndMinute:   int32(b.Interval().End().Minutes()),
		Phone:       d.Phone(),
		Department:  d.Department(),
		Title:       pgconv.TextFromPtr(d.Title()),
		IsActive:    b.IsActive(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

func BookingFromRow(row db.Bookings) (*booking.Booking, error) {
	start, err := booking.TimeOfDayFromMinutes(int(row.StartMinute))
	if err != nil {
		return nil, fmt.Errorf("booking %s start: %w", row.ID, err)
	}
	end, err := booking.TimeOfDayFromMinutes(int(row.EndMinute))
	if err != nil {
		return nil, fmt.Errorf("booking %s end: %w", row.ID, err)
	}
	interval, err := booking.NewInterval(start, end)
	if err != nil {
		return nil, fmt.Errorf("booking %s interval: %w", row.ID, err)
	}
	slot, err := booking.NewSlot(int(row.RoomNumber), booking.DateOf(row.BookingDate), interval)
	if err != nil {
		return nil, fmt.Errorf("booking %s slot: %w", row.ID, err)
	}
	details, err := booking.NewDetails(row.Name, row.Phone, row.Department, pgconv.PtrFromText(row.Title))
	if err != nil {
		return nil, fmt.Errorf("booking %s details: %w", row.ID, err)
	}

	return booking.ReconstructBooking(
		row.ID, slot, details, row.IsActive, row.CreatedBy, row.CreatedAt, row.UpdatedAt,
	), nil
}

func RoomNumberToInfra(n int) int32 {
	if n > math.MaxInt32 || n < math.MinInt32 {
		panic(fmt.Sprintf("room number out of int32 range: %d", n))
	}
	return int32(n)
}
