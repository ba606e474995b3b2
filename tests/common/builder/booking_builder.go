//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/booking"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomNumber int
	RoomTitle  string
	Name       string
	Date       string
	StartTime  string
	EndTime    string
	Phone      string
	Department string
	Title      *string
	IsActive   bool
	CreatedBy  uuid.UUID
	Now        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RoomNumber: 5,
		RoomTitle:  "Room E",
		Name:       "Alice",
		Date:       "2025-07-01",
		StartTime:  "10:00",
		EndTime:    "11:00",
		Phone:      "090-0000-0000",
		Department: "Engineering",
		IsActive:   true,
		CreatedBy:  uuid.New(),
		Now:        time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildSlot() (booking.Slot, error) {
	return booking.ParseSlot(b.RoomNumber, b.Date, b.StartTime, b.EndTime)
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := b.BuildSlot()
	if err != nil {
		return nil, err
	}
	details, err := booking.NewDetails(b.Name, b.Phone, b.Department, b.Title)
	if err != nil {
		return nil, err
	}
	bk := booking.NewBooking(slot, details, b.CreatedBy, b.Now)
	if !b.IsActive {
		bk.Cancel(b.Now)
	}
	return bk, nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomNumber: b.RoomNumber,
		Name:       b.Name,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Phone:      b.Phone,
		Department: b.Department,
		Title:      b.Title,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookingRequest {
	return reqdto.UpdateBookingRequest{
		RoomNumber: b.RoomNumber,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         uuid.New(),
		RoomNumber: b.RoomNumber,
		RoomTitle:  b.RoomTitle,
		Name:       b.Name,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Phone:      b.Phone,
		Department: b.Department,
		Title:      b.Title,
		IsActive:   b.IsActive,
		CreatedBy:  b.CreatedBy,
		CreatedAt:  b.Now,
		UpdatedAt:  b.Now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithRoom(roomNumber int) *BookingBuilder {
	b.RoomNumber = roomNumber
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTimes(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithTitle(title string) *BookingBuilder {
	b.Title = &title
	return b
}

func (b *BookingBuilder) WithCreatedBy(id uuid.UUID) *BookingBuilder {
	b.CreatedBy = id
	return b
}

func (b *BookingBuilder) AsCancelled() *BookingBuilder {
	b.IsActive = false
	return b
}
