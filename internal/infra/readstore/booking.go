package readstore

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository/converter"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingView(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (db.BookingWithRoomRow, error)
	ListBookingViews(ctx context.Context, dbtx db.DBTX) ([]db.BookingWithRoomRow, error)
	ListBookingViewsByRoom(ctx context.Context, dbtx db.DBTX, roomNumber int32, isActive bool) ([]db.BookingWithRoomRow, error)
	ListBookings(ctx context.Context, dbtx db.DBTX, arg db.ListBookingsParams) ([]db.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	dbtx    db.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		dbtx:    dbtx,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ListAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViews(ctx, r.dbtx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) ListByRoom(ctx context.Context, roomNumber int, active bool) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByRoom(ctx, r.dbtx, converter.RoomNumberToInfra(roomNumber), active)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room bookings", err)
	}
	return toBookingViews(rows), nil
}

// FindMatching runs outside any transaction; it backs the public
// availability query, not the write path.
func (r *BookingReadStore) FindMatching(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error) {
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

func toBookingViews(rows []db.BookingWithRoomRow) []*queries.BookingView {
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(row))
	}
	return views
}

func toBookingView(row db.BookingWithRoomRow) *queries.BookingView {
	return &queries.BookingView{
		ID:         row.ID,
		RoomNumber: int(row.RoomNumber),
		RoomTitle:  row.RoomTitle.String,
		Name:       row.Name,
		Date:       row.BookingDate.Format(booking.DateLayout),
		StartTime:  clock(row.StartMinute),
		EndTime:    clock(row.EndMinute),
		Phone:      row.Phone,
		Department: row.Department,
		Title:      pgconv.PtrFromText(row.Title),
		IsActive:   row.IsActive,
		CreatedBy:  row.CreatedBy,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func clock(minutes int32) string {
	t, err := booking.TimeOfDayFromMinutes(int(minutes))
	if err != nil {
		return ""
	}
	return t.String()
}
