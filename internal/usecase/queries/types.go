package queries

import (
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"

	"github.com/google/uuid"
)

// BookingView is a booking enriched with its room title. RoomTitle is empty
// when the room no longer exists.
type BookingView struct {
	ID         uuid.UUID `json:"id"`
	RoomNumber int       `json:"roomNumber"`
	RoomTitle  string    `json:"roomTitle"`
	Name       string    `json:"name"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	Title      *string   `json:"title"`
	IsActive   bool      `json:"isActive"`
	CreatedBy  uuid.UUID `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewBookingView(b *booking.Booking, roomTitle string) *BookingView {
	d := b.Details()
	return &BookingView{
		ID:         b.ID(),
		RoomNumber: b.RoomNumber(),
		RoomTitle:  roomTitle,
		Name:       d.Name(),
		Date:       b.Date().String(),
		StartTime:  b.Interval().Start().String(),
		EndTime:    b.Interval().End().String(),
		Phone:      d.Phone(),
		Department: d.Department(),
		Title:      d.Title(),
		IsActive:   b.IsActive(),
		CreatedBy:  b.CreatedBy(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
}

// RoomView is cached as JSON, so every field carries a tag.
type RoomView struct {
	RoomNumber  int       `json:"roomNumber"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	IsOpen      bool      `json:"isOpen"`
	IsActive    bool      `json:"isActive"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewRoomView(rm *room.Room) *RoomView {
	attrs := rm.Attributes()
	return &RoomView{
		RoomNumber:  rm.Number(),
		Title:       attrs.Title,
		Description: attrs.Description,
		Address:     attrs.Address,
		IsOpen:      rm.IsOpen(),
		IsActive:    rm.IsActive(),
		Image:       rm.Image(),
		CreatedAt:   rm.CreatedAt(),
		UpdatedAt:   rm.UpdatedAt(),
	}
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
