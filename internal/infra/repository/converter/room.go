package converter

import (
	"room-booking/internal/domain/room"
	"room-booking/internal/infra/db"
	"room-booking/internal/pkg/pgconv"
)

func RoomToParams(r *room.Room) db.RoomParams {
	attrs := r.Attributes()
	return db.RoomParams{
		RoomNumber:  RoomNumberToInfra(r.Number()),
		Title:       attrs.Title,
		Description: attrs.Description,
		Address:     attrs.Address,
		IsOpen:      r.IsOpen(),
		IsActive:    r.IsActive(),
		Image:       pgconv.TextFromPtr(r.Image()),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

func RoomFromRow(row db.Rooms) *room.Room {
	return room.ReconstructRoom(
		int(row.RoomNumber),
		room.Attributes{Title: row.Title, Description: row.Description, Address: row.Address},
		row.IsOpen,
		row.IsActive,
		pgconv.PtrFromText(row.Image),
		row.CreatedAt,
		row.UpdatedAt,
	)
}
