// Package memstore is a process-local store for development and tests.
// Write transactions run one at a time against a private copy of the
// state, which replaces the committed state only when fn succeeds.
package memstore

import (
	"context"
	"sync"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/domain/user"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type bookingRecord struct {
	booking *booking.Booking
	seq     uint64
}

type state struct {
	bookings map[uuid.UUID]bookingRecord
	rooms    map[int]*room.Room
	users    map[uuid.UUID]*user.User
	seq      uint64
}

func (s *state) clone() *state {
	c := &state{
		bookings: make(map[uuid.UUID]bookingRecord, len(s.bookings)),
		rooms:    make(map[int]*room.Room, len(s.rooms)),
		users:    make(map[uuid.UUID]*user.User, len(s.users)),
		seq:      s.seq,
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

type Store struct {
	txMu sync.Mutex // one write transaction at a time

	mu        sync.RWMutex // guards committed
	committed *state
}

func New() *Store {
	return &Store{
		committed: &state{
			bookings: map[uuid.UUID]bookingRecord{},
			rooms:    map[int]*room.Room{},
			users:    map[uuid.UUID]*user.User{},
		},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	working := s.committed.clone()
	s.mu.RUnlock()

	if err := fn(ctx, &memTx{st: working}); err != nil {
		return err
	}

	s.mu.Lock()
	s.committed = working
	s.mu.Unlock()
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Committed states are never mutated after the swap, so readers can use a
// snapshot without holding the lock.
func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed
}

var _ shared.UnitOfWork = (*Store)(nil)

type memTx struct {
	st *state
}

func (t *memTx) Bookings() shared.BookingRepository { return &bookingRepo{st: t.st} }
func (t *memTx) Rooms() shared.RoomRepository       { return &roomRepo{st: t.st} }
func (t *memTx) Users() shared.UserRepository       { return &userRepo{st: t.st} }

// Transactions are already serialized; the locks only honor the contract.
func (t *memTx) LockSlot(ctx context.Context, _ int, _ booking.Date) error { return ctx.Err() }
func (t *memTx) LockRoomNumbering(ctx context.Context) error               { return ctx.Err() }

func copyBooking(b *booking.Booking) *booking.Booking {
	c := *b
	return &c
}

func copyRoom(r *room.Room) *room.Room {
	c := *r
	return &c
}

func copyUser(u *user.User) *user.User {
	c := *u
	return &c
}
