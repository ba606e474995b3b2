package request

import (
	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/patch"
)

type CreateBookingRequest struct {
	RoomNumber int     `json:"roomNumber" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	StartTime  string  `json:"startTime" binding:"required"`
	EndTime    string  `json:"endTime" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	Department string  `json:"department" binding:"required"`
	Title      *string `json:"title,omitempty"`
}

func (r CreateBookingRequest) ToSlot() (booking.Slot, error) {
	return booking.ParseSlot(r.RoomNumber, r.Date, r.StartTime, r.EndTime)
}

func (r CreateBookingRequest) ToDetails() (booking.Details, error) {
	return booking.NewDetails(r.Name, r.Phone, r.Department, r.Title)
}

// UpdateBookingRequest always carries the full slot; descriptive fields are
// optional and keep their stored value when omitted.
type UpdateBookingRequest struct {
	RoomNumber int     `json:"roomNumber" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	StartTime  string  `json:"startTime" binding:"required"`
	EndTime    string  `json:"endTime" binding:"required"`
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Department *string `json:"department,omitempty"`
	Title      *string `json:"title,omitempty"`
}

func (r UpdateBookingRequest) ToSlot() (booking.Slot, error) {
	return booking.ParseSlot(r.RoomNumber, r.Date, r.StartTime, r.EndTime)
}

func (r UpdateBookingRequest) MergeDetails(current booking.Details) (booking.Details, error) {
	return booking.NewDetails(
		patch.Coalesce(r.Name, current.Name()),
		patch.Coalesce(r.Phone, current.Phone()),
		patch.Coalesce(r.Department, current.Department()),
		patch.NullableString(r.Title, current.Title()),
	)
}

type AvailabilityRequest struct {
	RoomNumber int    `form:"roomNumber" binding:"required"`
	Date       string `form:"date" binding:"required"`
	StartTime  string `form:"startTime" binding:"required"`
	EndTime    string `form:"endTime" binding:"required"`
	ExcludeID  string `form:"excludeId"`
}

type RoomBookingsRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// Active defaults to true when no status is given.
func (r RoomBookingsRequest) Active() bool {
	return r.Status != "inactive"
}
