//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/storage"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type publishedEvent struct {
	Key   string
	Value any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) PublishJSON(_ context.Context, key string, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Key: key, Value: v})
	return p.err
}

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, 0, len(p.events))
	for _, e := range p.events {
		keys = append(keys, e.Key)
	}
	return keys
}

type recordingCache struct {
	mu          sync.Mutex
	invalidated []int
}

func (c *recordingCache) InvalidateRoom(_ context.Context, roomNumber int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, roomNumber)
	return nil
}

type fakeImageStore struct {
	mu      sync.Mutex
	seq     int
	saved   map[string]string
	removed []string
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{saved: map[string]string{}}
}

func (s *fakeImageStore) Save(_ context.Context, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext != ".png" && ext != ".jpg" {
		return "", storage.ErrUnsupportedImage
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	name := fmt.Sprintf("img-%d%s", s.seq, ext)
	s.saved[name] = string(body)
	return name, nil
}

func (s *fakeImageStore) Remove(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saved, name)
	s.removed = append(s.removed, name)
	return nil
}

// stubUoW runs every callback on one stubTx so tests can inject store
// failures at a chosen step.
type stubUoW struct {
	tx *stubTx
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *stubUoW) Ping(context.Context) error { return nil }

type stubTx struct {
	lockErr    error
	roomExists bool
	roomErr    error
	findErr    error
	candidates []*booking.Booking
	inserted   []*booking.Booking
}

func (t *stubTx) Bookings() shared.BookingRepository { return stubBookings{t} }
func (t *stubTx) Rooms() shared.RoomRepository       { return stubRooms{t} }
func (t *stubTx) Users() shared.UserRepository       { return nil }

func (t *stubTx) LockSlot(context.Context, int, booking.Date) error { return t.lockErr }
func (t *stubTx) LockRoomNumbering(context.Context) error          { return t.lockErr }

type stubBookings struct{ t *stubTx }

func (b stubBookings) FindMatching(context.Context, booking.Filter) ([]*booking.Booking, error) {
	return b.t.candidates, b.t.findErr
}

func (b stubBookings) FindByID(context.Context, uuid.UUID) (*booking.Booking, error) {
	return nil, b.t.findErr
}

func (b stubBookings) Insert(_ context.Context, bk *booking.Booking) error {
	b.t.inserted = append(b.t.inserted, bk)
	return nil
}

func (b stubBookings) Update(context.Context, *booking.Booking) error { return nil }
func (b stubBookings) Delete(context.Context, uuid.UUID) error        { return nil }

type stubRooms struct{ t *stubTx }

func (r stubRooms) Exists(context.Context, int) (bool, error) {
	return r.t.roomExists, r.t.roomErr
}

func (r stubRooms) FindByNumber(context.Context, int) (*room.Room, error) {
	if r.t.roomErr != nil {
		return nil, r.t.roomErr
	}
	return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
}

func (r stubRooms) NextNumber(context.Context) (int, error)  { return 1, nil }
func (r stubRooms) Insert(context.Context, *room.Room) error { return nil }
func (r stubRooms) Update(context.Context, *room.Room) error { return nil }
func (r stubRooms) Delete(context.Context, int) error        { return nil }
