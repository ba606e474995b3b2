package repository

import (
	"context"

	"room-booking/internal/domain/user"
	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type UserQueries interface {
	FindUserByUsername(ctx context.Context, dbtx db.DBTX, username string) (db.Users, error)
	FindUserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (db.Users, error)
	CreateUser(ctx context.Context, dbtx db.DBTX, arg db.CreateUserParams) error
}

type UserRepository struct {
	queries UserQueries
	dbtx    db.DBTX
}

func NewUserRepository(queries UserQueries, dbtx db.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		dbtx:    dbtx,
	}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	row, err := r.queries.FindUserByUsername(ctx, r.dbtx, username)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	return decodeUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return decodeUser(row)
}

func (r *UserRepository) Insert(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.dbtx, converter.UserToParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func decodeUser(row db.Users) (*user.User, error) {
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode user", err, infra.KindDBFailure)
	}
	return u, nil
}
