//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomWriteQueries struct {
	mock.Mock
}

func (m *MockRoomWriteQueries) RoomExists(ctx context.Context, dbtx db.DBTX, roomNumber int32) (bool, error) {
	args := m.Called(ctx, dbtx, roomNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomWriteQueries) GetRoom(ctx context.Context, dbtx db.DBTX, roomNumber int32) (db.Rooms, error) {
	args := m.Called(ctx, dbtx, roomNumber)
	return args.Get(0).(db.Rooms), args.Error(1)
}

func (m *MockRoomWriteQueries) NextRoomNumber(ctx context.Context, dbtx db.DBTX) (int32, error) {
	args := m.Called(ctx, dbtx)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockRoomWriteQueries) InsertRoom(ctx context.Context, dbtx db.DBTX, arg db.RoomParams) error {
	args := m.Called(ctx, dbtx, arg)
	return args.Error(0)
}

func (m *MockRoomWriteQueries) UpdateRoom(ctx context.Context, dbtx db.DBTX, arg db.RoomParams) (int64, error) {
	args := m.Called(ctx, dbtx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoomWriteQueries) DeleteRoom(ctx context.Context, dbtx db.DBTX, roomNumber int32) (int64, error) {
	args := m.Called(ctx, dbtx, roomNumber)
	return args.Get(0).(int64), args.Error(1)
}

func TestRoomRepository_Exists(t *testing.T) {
	tests := []struct {
		name      string
		exists    bool
		mockError error
		wantErr   bool
	}{
		{name: "present", exists: true},
		{name: "absent", exists: false},
		{name: "database error", mockError: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockRoomWriteQueries)
			mockQueries.On("RoomExists", mock.Anything, mock.Anything, int32(5)).Return(tt.exists, tt.mockError)

			got, err := NewRoomRepository(mockQueries, nil).Exists(context.Background(), 5)

			if tt.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.exists, got)
		})
	}
}

func TestRoomRepository_FindByNumber(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	row := db.Rooms{
		RoomNumber: 3,
		Title:      "Board room",
		IsOpen:     true,
		IsActive:   true,
		Image:      pgtype.Text{String: "/uploads/board.png", Valid: true},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockRoomWriteQueries)
		mockQueries.On("GetRoom", mock.Anything, mock.Anything, int32(3)).Return(row, nil)

		got, err := NewRoomRepository(mockQueries, nil).FindByNumber(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, 3, got.Number())
		assert.Equal(t, "Board room", got.Title())
		assert.True(t, got.IsOpen())
		assert.Equal(t, "/uploads/board.png", *got.Image())
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockRoomWriteQueries)
		mockQueries.On("GetRoom", mock.Anything, mock.Anything, int32(3)).Return(db.Rooms{}, pgx.ErrNoRows)

		_, err := NewRoomRepository(mockQueries, nil).FindByNumber(context.Background(), 3)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestRoomRepository_InsertUsesNextNumber(t *testing.T) {
	mockQueries := new(MockRoomWriteQueries)
	mockQueries.On("NextRoomNumber", mock.Anything, mock.Anything).Return(int32(7), nil)
	mockQueries.On("InsertRoom", mock.Anything, mock.Anything, mock.MatchedBy(func(p db.RoomParams) bool {
		return p.RoomNumber == 7 && p.Title == "Annex" && !p.IsOpen && p.IsActive && !p.Image.Valid
	})).Return(nil)

	repo := NewRoomRepository(mockQueries, nil)
	next, err := repo.NextNumber(context.Background())
	require.NoError(t, err)

	r, err := room.NewRoom(next, room.Attributes{Title: " Annex "}, nil, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Insert(context.Background(), r))

	mockQueries.AssertExpectations(t)
}

func TestRoomRepository_Delete(t *testing.T) {
	mockQueries := new(MockRoomWriteQueries)
	mockQueries.On("DeleteRoom", mock.Anything, mock.Anything, int32(9)).Return(int64(0), nil)

	err := NewRoomRepository(mockQueries, nil).Delete(context.Background(), 9)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
