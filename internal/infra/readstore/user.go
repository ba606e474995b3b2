package readstore

import (
	"context"

	"github.com/google/uuid"

	"room-booking/internal/infra"
	"room-booking/internal/infra/db"
	"room-booking/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (db.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	dbtx    db.DBTX
}

func NewUserReadStore(queries UserReadQueries, dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		dbtx:    dbtx,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:        row.ID,
		Username:  row.Username,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
	}, nil
}
