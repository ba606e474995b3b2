package shared

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Ping: Store health for readiness checks
	Ping(ctx context.Context) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Users() UserRepository
	// LockSlot serializes every writer touching roomNumber on date until
	// the transaction ends.
	LockSlot(ctx context.Context, roomNumber int, date booking.Date) error
	// LockRoomNumbering serializes room number assignment.
	LockRoomNumbering(ctx context.Context) error
}

type BookingRepository interface {
	FindMatching(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Insert(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	Exists(ctx context.Context, number int) (bool, error)
	FindByNumber(ctx context.Context, number int) (*room.Room, error)
	NextNumber(ctx context.Context) (int, error)
	Insert(ctx context.Context, r *room.Room) error
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, number int) error
}

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	Insert(ctx context.Context, u *user.User) error
}
