package readstore

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository/converter"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"
)

type RoomReadQueries interface {
	GetRoom(ctx context.Context, dbtx db.DBTX, roomNumber int32) (db.Rooms, error)
	ListRooms(ctx context.Context, dbtx db.DBTX, openOnly bool) ([]db.Rooms, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	dbtx    db.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		dbtx:    dbtx,
	}
}

func (r *RoomReadStore) FindByNumber(ctx context.Context, roomNumber int) (*queries.RoomView, error) {
	row, err := r.queries.GetRoom(ctx, r.dbtx, converter.RoomNumberToInfra(roomNumber))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return toRoomView(row), nil
}

func (r *RoomReadStore) List(ctx context.Context, openOnly bool) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.dbtx, openOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	views := make([]*queries.RoomView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRoomView(row))
	}
	return views, nil
}

func toRoomView(row db.Rooms) *queries.RoomView {
	return &queries.RoomView{
		RoomNumber:  int(row.RoomNumber),
		Title:       row.Title,
		Description: row.Description,
		Address:     row.Address,
		IsOpen:      row.IsOpen,
		IsActive:    row.IsActive,
		Image:       pgconv.PtrFromText(row.Image),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
