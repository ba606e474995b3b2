package memstore

import (
	"context"
	"sort"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/domain/user"
	"room-booking/internal/infra"

	"github.com/google/uuid"
)

type bookingRepo struct {
	st *state
}

func (r *bookingRepo) FindMatching(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for slot", err)
	}
	return matching(r.st, filter), nil
}

func (r *bookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	rec, ok := r.st.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return copyBooking(rec.booking), nil
}

func (r *bookingRepo) Insert(ctx context.Context, b *booking.Booking) error {
	if _, ok := r.st.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("booking already exists", nil, infra.KindDuplicateKey)
	}
	if err := r.checkNoOverlap(b); err != nil {
		return err
	}
	r.st.seq++
	r.st.bookings[b.ID()] = bookingRecord{booking: copyBooking(b), seq: r.st.seq}
	return nil
}

func (r *bookingRepo) Update(ctx context.Context, b *booking.Booking) error {
	rec, ok := r.st.bookings[b.ID()]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if err := r.checkNoOverlap(b); err != nil {
		return err
	}
	r.st.bookings[b.ID()] = bookingRecord{booking: copyBooking(b), seq: rec.seq}
	return nil
}

func (r *bookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.st.bookings[id]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(r.st.bookings, id)
	return nil
}

// checkNoOverlap mirrors the exclusion constraint of the Postgres schema.
func (r *bookingRepo) checkNoOverlap(b *booking.Booking) error {
	if !b.IsActive() {
		return nil
	}
	for id, rec := range r.st.bookings {
		if id != b.ID() && rec.booking.Occupies(b.Slot()) {
			return infra.WrapRepoErr("booking overlaps an active booking", nil, infra.KindConflict)
		}
	}
	return nil
}

func matching(st *state, filter booking.Filter) []*booking.Booking {
	recs := make([]bookingRecord, 0)
	for _, rec := range st.bookings {
		if filter.Matches(rec.booking) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i].booking.Interval().Start(), recs[j].booking.Interval().Start()
		if a != b {
			return a.Before(b)
		}
		return recs[i].seq < recs[j].seq
	})

	result := make([]*booking.Booking, 0, len(recs))
	for _, rec := range recs {
		result = append(result, copyBooking(rec.booking))
	}
	return result
}

type roomRepo struct {
	st *state
}

func (r *roomRepo) Exists(ctx context.Context, number int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, infra.WrapRepoErr("failed to check room existence", err)
	}
	_, ok := r.st.rooms[number]
	return ok, nil
}

func (r *roomRepo) FindByNumber(ctx context.Context, number int) (*room.Room, error) {
	rm, ok := r.st.rooms[number]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return copyRoom(rm), nil
}

func (r *roomRepo) NextNumber(ctx context.Context) (int, error) {
	highest := 0
	for n := range r.st.rooms {
		highest = max(highest, n)
	}
	return highest + 1, nil
}

func (r *roomRepo) Insert(ctx context.Context, rm *room.Room) error {
	if _, ok := r.st.rooms[rm.Number()]; ok {
		return infra.WrapRepoErr("room number already taken", nil, infra.KindDuplicateKey)
	}
	r.st.rooms[rm.Number()] = copyRoom(rm)
	return nil
}

func (r *roomRepo) Update(ctx context.Context, rm *room.Room) error {
	if _, ok := r.st.rooms[rm.Number()]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	r.st.rooms[rm.Number()] = copyRoom(rm)
	return nil
}

func (r *roomRepo) Delete(ctx context.Context, number int) error {
	if _, ok := r.st.rooms[number]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	delete(r.st.rooms, number)
	return nil
}

type userRepo struct {
	st *state
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range r.st.users {
		if u.Username().Value() == username {
			return copyUser(u), nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return copyUser(u), nil
}

func (r *userRepo) Insert(ctx context.Context, u *user.User) error {
	for _, existing := range r.st.users {
		if existing.Username().Value() == u.Username().Value() {
			return infra.WrapRepoErr("username already taken", nil, infra.KindDuplicateKey)
		}
	}
	r.st.users[u.ID()] = copyUser(u)
	return nil
}
