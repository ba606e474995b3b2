package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"log/slog"
	"slices"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/metrics"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/availability"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
	ListByRoomAndStatus(ctx context.Context, roomNumber int, active bool) ([]*BookingView, error)
	CheckAvailability(ctx context.Context, in AvailabilityInput) (bool, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListAll(ctx context.Context) ([]*BookingView, error)
	ListByRoom(ctx context.Context, roomNumber int, active bool) ([]*BookingView, error)
	FindMatching(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error)
}

type AvailabilityInput struct {
	RoomNumber int
	Date       string
	StartTime  string
	EndTime    string
	ExcludeID  *uuid.UUID
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
	}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, classifyReadErr(err, shared.ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context) ([]*BookingView, error) {
	views, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, classifyReadErr(err, nil)
	}
	return nonNil(views), nil
}

// ListByRoomAndStatus orders by start time. The sort is stable, so equal start
// times keep the store's creation order.
func (q *bookingQueriesImpl) ListByRoomAndStatus(ctx context.Context, roomNumber int, active bool) ([]*BookingView, error) {
	views, err := q.readStore.ListByRoom(ctx, roomNumber, active)
	if err != nil {
		return nil, classifyReadErr(err, nil)
	}

	slices.SortStableFunc(views, func(a, b *BookingView) int {
		return compareClock(a.StartTime, b.StartTime)
	})
	return nonNil(views), nil
}

func (q *bookingQueriesImpl) CheckAvailability(ctx context.Context, in AvailabilityInput) (bool, error) {
	slot, err := booking.ParseSlot(in.RoomNumber, in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return false, errs.Mark(err, shared.ErrValidation)
	}

	available, err := availability.NewOracle(q.readStore).Check(ctx, slot, in.ExcludeID)
	metrics.ObserveAvailabilityCheck(available, err)
	if err != nil {
		slog.Error("availability check failed", "slot", slot.String(), "error", err.Error())
		return false, errs.Mark(err, shared.ErrStorage)
	}
	return available, nil
}

// HH:MM strings order lexically the same as chronologically.
func compareClock(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func classifyReadErr(err error, notFound error) error {
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, shared.ErrStorage)
}
