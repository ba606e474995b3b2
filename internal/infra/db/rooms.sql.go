package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `room_number, title, description, address, is_open, is_active, image, created_at, updated_at`

const roomExists = `SELECT EXISTS (SELECT 1 FROM rooms WHERE room_number = $1)`

func (q *Queries) RoomExists(ctx context.Context, db DBTX, roomNumber int32) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, roomExists, roomNumber).Scan(&exists)
	return exists, err
}

const getRoom = `SELECT ` + roomColumns + ` FROM rooms WHERE room_number = $1`

func (q *Queries) GetRoom(ctx context.Context, db DBTX, roomNumber int32) (Rooms, error) {
	rows, err := db.Query(ctx, getRoom, roomNumber)
	return collectOne[Rooms](rows, err)
}

const listRooms = `SELECT ` + roomColumns + ` FROM rooms
WHERE ($1::bool = false OR is_open)
ORDER BY room_number`

func (q *Queries) ListRooms(ctx context.Context, db DBTX, openOnly bool) ([]Rooms, error) {
	rows, err := db.Query(ctx, listRooms, openOnly)
	return collectAll[Rooms](rows, err)
}

const nextRoomNumber = `SELECT COALESCE(MAX(room_number), 0) + 1 FROM rooms`

func (q *Queries) NextRoomNumber(ctx context.Context, db DBTX) (int32, error) {
	var next int32
	err := db.QueryRow(ctx, nextRoomNumber).Scan(&next)
	return next, err
}

const insertRoom = `INSERT INTO rooms (` + roomColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type RoomParams struct {
	RoomNumber  int32
	Title       string
	Description string
	Address     string
	IsOpen      bool
	IsActive    bool
	Image       pgtype.Text
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) InsertRoom(ctx context.Context, db DBTX, arg RoomParams) error {
	_, err := db.Exec(ctx, insertRoom,
		arg.RoomNumber, arg.Title, arg.Description, arg.Address,
		arg.IsOpen, arg.IsActive, arg.Image, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const updateRoom = `UPDATE rooms SET
	title = $2, description = $3, address = $4, is_open = $5, is_active = $6, image = $7, updated_at = $8
WHERE room_number = $1`

func (q *Queries) UpdateRoom(ctx context.Context, db DBTX, arg RoomParams) (int64, error) {
	tag, err := db.Exec(ctx, updateRoom,
		arg.RoomNumber, arg.Title, arg.Description, arg.Address,
		arg.IsOpen, arg.IsActive, arg.Image, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteRoom = `DELETE FROM rooms WHERE room_number = $1`

func (q *Queries) DeleteRoom(ctx context.Context, db DBTX, roomNumber int32) (int64, error) {
	tag, err := db.Exec(ctx, deleteRoom, roomNumber)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
