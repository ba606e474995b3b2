//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) FindUserByUsername(ctx context.Context, dbtx db.DBTX, username string) (db.Users, error) {
	args := m.Called(ctx, dbtx, username)
	return args.Get(0).(db.Users), args.Error(1)
}

func (m *MockUserQueries) FindUserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (db.Users, error) {
	args := m.Called(ctx, dbtx, id)
	return args.Get(0).(db.Users), args.Error(1)
}

func (m *MockUserQueries) CreateUser(ctx context.Context, dbtx db.DBTX, arg db.CreateUserParams) error {
	args := m.Called(ctx, dbtx, arg)
	return args.Error(0)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	row := db.Users{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
		Role:         "admin",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		row       db.Users
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
			row:  row,
		},
		{
			name:      "not found",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
		{
			name:     "corrupt role",
			row:      db.Users{ID: row.ID, Username: "alice", Role: "root"},
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserQueries)
			mockQueries.On("FindUserByUsername", mock.Anything, mock.Anything, "alice").Return(tt.row, tt.mockError)

			repo := NewUserRepository(mockQueries, nil)
			got, err := repo.FindByUsername(context.Background(), "alice")

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.row.ID, got.ID())
				assert.Equal(t, user.RoleAdmin, got.Role())
				assert.Equal(t, "alice", got.Username().Value())
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_Insert(t *testing.T) {
	username, err := user.NewUsername("bob")
	require.NoError(t, err)
	u := user.NewUser(username, "hash", user.RoleUser, time.Now())

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "duplicate username", mockError: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserQueries)
			mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p db.CreateUserParams) bool {
				return p.ID == u.ID() && p.Username == "bob" && p.Role == "user"
			})).Return(tt.mockError)

			err := NewUserRepository(mockQueries, nil).Insert(context.Background(), u)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
