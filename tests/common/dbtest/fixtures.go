//go:build unit || e2e

package dbtest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plain password of every fixture user.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
	hashErr     error
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		var b []byte
		b, hashErr = bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
		defaultHash = string(b)
	})
	require.NoError(t, hashErr)
	return defaultHash
}

func CreateTestUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, username, password_hash, role) VALUES ($1, $2, $3, $4) ON CONFLICT (username) DO NOTHING",
		userID, username, defaultPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, number int, title string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (room_number, title, is_open) VALUES ($1, $2, true)",
		number, title)
	require.NoError(t, err)
}

func CountActiveBookings(t *testing.T, db DBLike, roomNumber int, date string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE room_number = $1 AND booking_date = $2::date AND is_active",
		roomNumber, date).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB truncates every application table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE bookings, rooms, users RESTART IDENTITY CASCADE")
	return err
}
