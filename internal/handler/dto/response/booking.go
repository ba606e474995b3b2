package response

import (
	"time"

	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

type BookingMutationResponse struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	// same field names and types on both sides, so Copy cannot fail
	_ = copier.Copy(&res, v)
	return &res
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}
