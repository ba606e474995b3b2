package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID          uuid.UUID   `db:"id"`
	RoomNumber  int32       `db:"room_number"`
	Name        string      `db:"name"`
	BookingDate time.Time   `db:"booking_date"`
	StartMinute int32       `db:"start_minute"`
	EndMinute   int32       `db:"end_minute"`
	Phone       string      `db:"phone"`
	Department  string      `db:"department"`
	Title       pgtype.Text `db:"title"`
	IsActive    bool        `db:"is_active"`
	CreatedBy   uuid.UUID   `db:"created_by"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

// BookingWithRoomRow carries the room title joined in for listings. The
// title is NULL when the room no longer exists.
type BookingWithRoomRow struct {
	Bookings
	RoomTitle pgtype.Text `db:"room_title"`
}

type Rooms struct {
	RoomNumber  int32       `db:"room_number"`
	Title       string      `db:"title"`
	Description string      `db:"description"`
	Address     string      `db:"address"`
	IsOpen      bool        `db:"is_open"`
	IsActive    bool        `db:"is_active"`
	Image       pgtype.Text `db:"image"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

type Users struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}
