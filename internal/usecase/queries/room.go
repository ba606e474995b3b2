package queries

//go:generate mockgen -source=room.go -destination=../../../tests/mock/queries/room.go -package=queriesmock

import (
	"context"

	"room-booking/internal/usecase/shared"
)

type RoomQueries interface {
	Get(ctx context.Context, roomNumber int) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
	ListOpen(ctx context.Context) ([]*RoomView, error)
}

type RoomReadStore interface {
	FindByNumber(ctx context.Context, roomNumber int) (*RoomView, error)
	List(ctx context.Context, openOnly bool) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{
		readStore: readStore,
	}
}

func (q *roomQueriesImpl) Get(ctx context.Context, roomNumber int) (*RoomView, error) {
	view, err := q.readStore.FindByNumber(ctx, roomNumber)
	if err != nil {
		return nil, classifyReadErr(err, shared.ErrRoomNotFound)
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	views, err := q.readStore.List(ctx, false)
	if err != nil {
		return nil, classifyReadErr(err, nil)
	}
	return nonNil(views), nil
}

func (q *roomQueriesImpl) ListOpen(ctx context.Context) ([]*RoomView, error) {
	views, err := q.readStore.List(ctx, true)
	if err != nil {
		return nil, classifyReadErr(err, nil)
	}
	return nonNil(views), nil
}
