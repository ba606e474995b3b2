//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/room"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/queries"
)

type RoomBuilder struct {
	Number      int
	Title       string
	Description string
	Address     string
	IsOpen      bool
	Image       *string
	Now         time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		Number:      1,
		Title:       "Room A",
		Description: "Projector and whiteboard",
		Address:     "3F East",
		Now:         time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) attributes() room.Attributes {
	return room.Attributes{Title: r.Title, Description: r.Description, Address: r.Address}
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*room.Room, error) {
	rm, err := room.NewRoom(r.Number, r.attributes(), r.Image, r.Now)
	if err != nil {
		return nil, err
	}
	if r.IsOpen {
		rm.Open(r.Now)
	}
	return rm, nil
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		Title:       r.Title,
		Description: r.Description,
		Address:     r.Address,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		RoomNumber:  r.Number,
		Title:       r.Title,
		Description: r.Description,
		Address:     r.Address,
		IsOpen:      r.IsOpen,
		IsActive:    true,
		Image:       r.Image,
		CreatedAt:   r.Now,
		UpdatedAt:   r.Now,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithNumber(number int) *RoomBuilder {
	r.Number = number
	return r
}

func (r *RoomBuilder) WithTitle(title string) *RoomBuilder {
	r.Title = title
	return r
}

func (r *RoomBuilder) WithImage(image string) *RoomBuilder {
	r.Image = &image
	return r
}

func (r *RoomBuilder) AsOpen() *RoomBuilder {
	r.IsOpen = true
	return r
}
