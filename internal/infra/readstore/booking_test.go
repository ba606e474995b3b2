//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/infra"
	"room-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) GetBookingView(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (db.BookingWithRoomRow, error) {
	args := m.Called(ctx, dbtx, id)
	return args.Get(0).(db.BookingWithRoomRow), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingViews(ctx context.Context, dbtx db.DBTX) ([]db.BookingWithRoomRow, error) {
	args := m.Called(ctx, dbtx)
	rows, _ := args.Get(0).([]db.BookingWithRoomRow)
	return rows, args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingViewsByRoom(ctx context.Context, dbtx db.DBTX, roomNumber int32, isActive bool) ([]db.BookingWithRoomRow, error) {
	args := m.Called(ctx, dbtx, roomNumber, isActive)
	rows, _ := args.Get(0).([]db.BookingWithRoomRow)
	return rows, args.Error(1)
}

func (m *MockBookingReadQueries) ListBookings(ctx context.Context, dbtx db.DBTX, arg db.ListBookingsParams) ([]db.Bookings, error) {
	args := m.Called(ctx, dbtx, arg)
	rows, _ := args.Get(0).([]db.Bookings)
	return rows, args.Error(1)
}

func viewRow(roomTitle pgtype.Text) db.BookingWithRoomRow {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return db.BookingWithRoomRow{
		Bookings: db.Bookings{
			ID:          uuid.New(),
			RoomNumber:  5,
			Name:        "Tanaka",
			BookingDate: day,
			StartMinute: 9 * 60,
			EndMinute:   10*60 + 30,
			Phone:       "090",
			Department:  "Sales",
			IsActive:    true,
			CreatedAt:   day,
			UpdatedAt:   day,
		},
		RoomTitle: roomTitle,
	}
}

func TestBookingReadStore_FindByID(t *testing.T) {
	row := viewRow(pgtype.Text{String: "Board room", Valid: true})

	t.Run("renders the view", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("GetBookingView", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		view, err := NewBookingReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)

		require.NoError(t, err)
		assert.Equal(t, "Board room", view.RoomTitle)
		assert.Equal(t, "2024-01-10", view.Date)
		assert.Equal(t, "09:00", view.StartTime)
		assert.Equal(t, "10:30", view.EndTime)
		assert.Nil(t, view.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("GetBookingView", mock.Anything, mock.Anything, row.ID).Return(db.BookingWithRoomRow{}, pgx.ErrNoRows)

		_, err := NewBookingReadStore(mockQueries, nil).FindByID(context.Background(), row.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingReadStore_ListAll(t *testing.T) {
	t.Run("missing room leaves the title empty", func(t *testing.T) {
		rows := []db.BookingWithRoomRow{
			viewRow(pgtype.Text{String: "Board room", Valid: true}),
			viewRow(pgtype.Text{}),
		}
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("ListBookingViews", mock.Anything, mock.Anything).Return(rows, nil)

		views, err := NewBookingReadStore(mockQueries, nil).ListAll(context.Background())

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "Board room", views[0].RoomTitle)
		assert.Empty(t, views[1].RoomTitle)
	})

	t.Run("empty table yields an empty slice", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("ListBookingViews", mock.Anything, mock.Anything).Return(nil, nil)

		views, err := NewBookingReadStore(mockQueries, nil).ListAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("ListBookingViews", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		_, err := NewBookingReadStore(mockQueries, nil).ListAll(context.Background())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_ListByRoom(t *testing.T) {
	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("ListBookingViewsByRoom", mock.Anything, mock.Anything, int32(5), false).
		Return([]db.BookingWithRoomRow{viewRow(pgtype.Text{String: "Board room", Valid: true})}, nil)

	views, err := NewBookingReadStore(mockQueries, nil).ListByRoom(context.Background(), 5, false)

	require.NoError(t, err)
	require.Len(t, views, 1)
	mockQueries.AssertExpectations(t)
}
