package memstore

import (
	"context"
	"sort"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	store *Store
}

func NewBookingReadStore(store *Store) *BookingReadStore {
	return &BookingReadStore{store: store}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	st := r.store.snapshot()
	rec, ok := st.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return queries.NewBookingView(rec.booking, roomTitle(st, rec.booking.RoomNumber())), nil
}

func (r *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingView, error) {
	st := r.store.snapshot()
	return views(st, byDateThenStart(filterRecords(st, func(*booking.Booking) bool { return true }))), nil
}

func (r *BookingReadStore) ListByRoom(ctx context.Context, roomNumber int, active bool) ([]*queries.BookingView, error) {
	st := r.store.snapshot()
	recs := filterRecords(st, func(b *booking.Booking) bool {
		return b.RoomNumber() == roomNumber && b.IsActive() == active
	})
	return views(st, byStart(recs)), nil
}

func (r *BookingReadStore) FindMatching(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for slot", err)
	}
	return matching(r.store.snapshot(), filter), nil
}

func filterRecords(st *state, keep func(*booking.Booking) bool) []bookingRecord {
	recs := make([]bookingRecord, 0)
	for _, rec := range st.bookings {
		if keep(rec.booking) {
			recs = append(recs, rec)
		}
	}
	return recs
}

// byDateThenStart orders by date, then start time, then insertion.
func byDateThenStart(recs []bookingRecord) []bookingRecord {
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i].booking, recs[j].booking
		if !a.Date().Equal(b.Date()) {
			return a.Date().Before(b.Date())
		}
		return lessStartThenSeq(recs[i], recs[j])
	})
	return recs
}

// byStart ignores the date: equal start times fall back to insertion order.
func byStart(recs []bookingRecord) []bookingRecord {
	sort.Slice(recs, func(i, j int) bool { return lessStartThenSeq(recs[i], recs[j]) })
	return recs
}

func lessStartThenSeq(a, b bookingRecord) bool {
	sa, sb := a.booking.Interval().Start(), b.booking.Interval().Start()
	if sa != sb {
		return sa.Before(sb)
	}
	return a.seq < b.seq
}

func views(st *state, recs []bookingRecord) []*queries.BookingView {
	out := make([]*queries.BookingView, 0, len(recs))
	for _, rec := range recs {
		out = append(out, queries.NewBookingView(rec.booking, roomTitle(st, rec.booking.RoomNumber())))
	}
	return out
}

func roomTitle(st *state, number int) string {
	if rm, ok := st.rooms[number]; ok {
		return rm.Title()
	}
	return ""
}

type RoomReadStore struct {
	store *Store
}

func NewRoomReadStore(store *Store) *RoomReadStore {
	return &RoomReadStore{store: store}
}

func (r *RoomReadStore) FindByNumber(ctx context.Context, roomNumber int) (*queries.RoomView, error) {
	rm, ok := r.store.snapshot().rooms[roomNumber]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return queries.NewRoomView(rm), nil
}

func (r *RoomReadStore) List(ctx context.Context, openOnly bool) ([]*queries.RoomView, error) {
	st := r.store.snapshot()
	out := make([]*queries.RoomView, 0, len(st.rooms))
	for _, rm := range st.rooms {
		if openOnly && !rm.IsOpen() {
			continue
		}
		out = append(out, queries.NewRoomView(rm))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out, nil
}

type UserReadStore struct {
	store *Store
}

func NewUserReadStore(store *Store) *UserReadStore {
	return &UserReadStore{store: store}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	u, ok := r.store.snapshot().users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &queries.UserView{
		ID:        u.ID(),
		Username:  u.Username().Value(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}, nil
}
