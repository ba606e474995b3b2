package repository

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	ListBookings(ctx context.Context, dbtx db.DBTX, arg db.ListBookingsParams) ([]db.Bookings, error)
	GetBooking(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (db.Bookings, error)
	InsertBooking(ctx context.Context, dbtx db.DBTX, arg db.InsertBookingParams) error
	UpdateBooking(ctx context.Context, dbtx db.DBTX, arg db.UpdateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	dbtx    db.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		dbtx:    dbtx,
	}
}

func (r *BookingRepository) FindMatching(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookings(ctx, r.dbtx, db.ListBookingsParams{
		RoomNumber:  converter.RoomNumberToInfra(filter.RoomNumber),
		BookingDate: filter.Date.Time(),
		IsActive:    filter.IsActive,
		ExcludeID:   filter.ExcludeID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for slot", err)
	}

	result := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BookingFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.InsertBooking(ctx, r.dbtx, converter.BookingToInsertParams(b)); err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBooking(ctx, r.dbtx, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, r.dbtx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
