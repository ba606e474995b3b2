package request

import (
	"room-booking/internal/domain/room"
	"room-booking/internal/pkg/patch"
)

// Room requests arrive as multipart forms; the image part is read separately.
type CreateRoomRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Address     string `form:"address"`
}

func (r CreateRoomRequest) ToAttributes() room.Attributes {
	return room.Attributes{
		Title:       r.Title,
		Description: r.Description,
		Address:     r.Address,
	}
}

type UpdateRoomRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
	Address     *string `form:"address"`
	IsActive    *bool   `form:"isActive"`
}

func (r UpdateRoomRequest) MergeAttributes(current room.Attributes) room.Attributes {
	return room.Attributes{
		Title:       patch.CoalesceTrimmed(r.Title, current.Title),
		Description: patch.Coalesce(r.Description, current.Description),
		Address:     patch.Coalesce(r.Address, current.Address),
	}
}
