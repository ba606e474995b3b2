package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `b.id, b.room_number, b.name, b.booking_date, b.start_minute, b.end_minute,
	b.phone, b.department, b.title, b.is_active, b.created_by, b.created_at, b.updated_at`

const listBookings = `SELECT ` + bookingColumns + `
FROM bookings b
WHERE b.room_number = $1
  AND b.booking_date = $2
  AND b.is_active = $3
  AND ($4::uuid IS NULL OR b.id <> $4::uuid)
ORDER BY b.start_minute, b.seq`

type ListBookingsParams struct {
	RoomNumber  int32
	BookingDate time.Time
	IsActive    bool
	ExcludeID   *uuid.UUID
}

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]Bookings, error) {
	rows, err := db.Query(ctx, listBookings, arg.RoomNumber, dateOnly(arg.BookingDate), arg.IsActive, arg.ExcludeID)
	return collectAll[Bookings](rows, err)
}

const getBooking = `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`

func (q *Queries) GetBooking(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	rows, err := db.Query(ctx, getBooking, id)
	return collectOne[Bookings](rows, err)
}

const insertBooking = `INSERT INTO bookings (
	id, room_number, name, booking_date, start_minute, end_minute,
	phone, department, title, is_active, created_by, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

type InsertBookingParams struct {
	ID          uuid.UUID
	RoomNumber  int32
	Name        string
	BookingDate time.Time
	StartMinute int32
	EndMinute   int32
	Phone       string
	Department  string
	Title       pgtype.Text
	IsActive    bool
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) InsertBooking(ctx context.Context, db DBTX, arg InsertBookingParams) error {
	_, err := db.Exec(ctx, insertBooking,
		arg.ID, arg.RoomNumber, arg.Name, dateOnly(arg.BookingDate), arg.StartMinute, arg.EndMinute,
		arg.Phone, arg.Department, arg.Title, arg.IsActive, arg.CreatedBy, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const updateBooking = `UPDATE bookings SET
	room_number = $2, name = $3, booking_date = $4, start_minute = $5, end_minute = $6,
	phone = $7, department = $8, title = $9, is_active = $10, updated_at = $11
WHERE id = $1`

type UpdateBookingParams struct {
	ID          uuid.UUID
	RoomNumber  int32
	Name        string
	BookingDate time.Time
	StartMinute int32
	EndMinute   int32
	Phone       string
	Department  string
	Title       pgtype.Text
	IsActive    bool
	UpdatedAt   time.Time
}

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	tag, err := db.Exec(ctx, updateBooking,
		arg.ID, arg.RoomNumber, arg.Name, dateOnly(arg.BookingDate), arg.StartMinute, arg.EndMinute,
		arg.Phone, arg.Department, arg.Title, arg.IsActive, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteBooking = `DELETE FROM bookings WHERE id = $1`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteBooking, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const bookingWithRoomFrom = `SELECT ` + bookingColumns + `, r.title AS room_title
FROM bookings b
LEFT JOIN rooms r ON r.room_number = b.room_number`

const listBookingViews = bookingWithRoomFrom + `
ORDER BY b.booking_date, b.start_minute, b.seq`

func (q *Queries) ListBookingViews(ctx context.Context, db DBTX) ([]BookingWithRoomRow, error) {
	rows, err := db.Query(ctx, listBookingViews)
	return collectAll[BookingWithRoomRow](rows, err)
}

const getBookingView = bookingWithRoomFrom + ` WHERE b.id = $1`

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id uuid.UUID) (BookingWithRoomRow, error) {
	rows, err := db.Query(ctx, getBookingView, id)
	return collectOne[BookingWithRoomRow](rows, err)
}

const listBookingViewsByRoom = bookingWithRoomFrom + `
WHERE b.room_number = $1 AND b.is_active = $2
ORDER BY b.start_minute, b.seq`

func (q *Queries) ListBookingViewsByRoom(ctx context.Context, db DBTX, roomNumber int32, isActive bool) ([]BookingWithRoomRow, error) {
	rows, err := db.Query(ctx, listBookingViewsByRoom, roomNumber, isActive)
	return collectAll[BookingWithRoomRow](rows, err)
}
