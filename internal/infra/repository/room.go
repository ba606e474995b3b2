package repository

import (
	"context"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository/converter"
)

type RoomWriteQueries interface {
	RoomExists(ctx context.Context, dbtx db.DBTX, roomNumber int32) (bool, error)
	GetRoom(ctx context.Context, dbtx db.DBTX, roomNumber int32) (db.Rooms, error)
	NextRoomNumber(ctx context.Context, dbtx db.DBTX) (int32, error)
	InsertRoom(ctx context.Context, dbtx db.DBTX, arg db.RoomParams) error
	UpdateRoom(ctx context.Context, dbtx db.DBTX, arg db.RoomParams) (int64, error)
	DeleteRoom(ctx context.Context, dbtx db.DBTX, roomNumber int32) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	dbtx    db.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		dbtx:    dbtx,
	}
}

func (r *RoomRepository) Exists(ctx context.Context, number int) (bool, error) {
	exists, err := r.queries.RoomExists(ctx, r.dbtx, converter.RoomNumberToInfra(number))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room existence", err)
	}
	return exists, nil
}

func (r *RoomRepository) FindByNumber(ctx context.Context, number int) (*room.Room, error) {
	row, err := r.queries.GetRoom(ctx, r.dbtx, converter.RoomNumberToInfra(number))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return converter.RoomFromRow(row), nil
}

func (r *RoomRepository) NextNumber(ctx context.Context) (int, error) {
	next, err := r.queries.NextRoomNumber(ctx, r.dbtx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to compute next room number", err)
	}
	return int(next), nil
}

func (r *RoomRepository) Insert(ctx context.Context, rm *room.Room) error {
	if err := r.queries.InsertRoom(ctx, r.dbtx, converter.RoomToParams(rm)); err != nil {
		return infra.WrapRepoErr("failed to insert room", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	n, err := r.queries.UpdateRoom(ctx, r.dbtx, converter.RoomToParams(rm))
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, number int) error {
	n, err := r.queries.DeleteRoom(ctx, r.dbtx, converter.RoomNumberToInfra(number))
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
