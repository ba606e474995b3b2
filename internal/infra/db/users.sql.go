package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const userColumns = `id, username, password_hash, role, created_at`

const findUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

func (q *Queries) FindUserByUsername(ctx context.Context, db DBTX, username string) (Users, error) {
	rows, err := db.Query(ctx, findUserByUsername, username)
	return collectOne[Users](rows, err)
}

const findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	rows, err := db.Query(ctx, findUserByID, id)
	return collectOne[Users](rows, err)
}

const createUser = `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5)`

type CreateUserParams struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := db.Exec(ctx, createUser, arg.ID, arg.Username, arg.PasswordHash, arg.Role, arg.CreatedAt)
	return err
}
