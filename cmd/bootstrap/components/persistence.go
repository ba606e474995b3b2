package components

import (
	"context"

	"room-booking/internal/infra/cache"
	"room-booking/internal/infra/db"
	"room-booking/internal/infra/memstore"
	"room-booking/internal/infra/readstore"
	"room-booking/internal/infra/storage"
	"room-booking/internal/infra/uow"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
		func(s Stores) shared.UnitOfWork { return s.UoW },
		func(s Stores) queries.BookingReadStore { return s.Bookings },
		func(s Stores) queries.UserReadStore { return s.Users },
		fx.Annotate(
			NewRoomCache,
			fx.As(new(queries.RoomReadStore)),
			fx.As(new(commands.RoomCacheInvalidator)),
		),
		fx.Annotate(
			NewImageStore,
			fx.As(new(commands.ImageStore)),
		),
	),
)

// Stores groups the write side and the read stores of one backend.
type Stores struct {
	UoW      shared.UnitOfWork
	Bookings queries.BookingReadStore
	Rooms    queries.RoomReadStore
	Users    queries.UserReadStore
}

func NewStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return newMemoryStores(), nil
	}
	return newPostgresStores(lc, cfg.DB)
}

func newMemoryStores() Stores {
	st := memstore.New()
	return Stores{
		UoW:      st,
		Bookings: memstore.NewBookingReadStore(st),
		Rooms:    memstore.NewRoomReadStore(st),
		Users:    memstore.NewUserReadStore(st),
	}
}

func newPostgresStores(lc fx.Lifecycle, cfg config.DBConfig) (Stores, error) {
	pool, cleanup, err := db.Connect(cfg)
	if err != nil {
		return Stores{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	q := db.New()
	return Stores{
		UoW:      uow.NewPostgresUoW(pool, q),
		Bookings: readstore.NewBookingReadStore(q, pool),
		Rooms:    readstore.NewRoomReadStore(q, pool),
		Users:    readstore.NewUserReadStore(q, pool),
	}, nil
}

// NewRoomCache accepts a nil client, in which case reads go straight to the store.
func NewRoomCache(s Stores, rdb *redis.Client, cfg config.Config) *cache.RoomCache {
	return cache.NewRoomCache(s.Rooms, rdb, cfg.Redis.RoomCacheTTL)
}

func NewImageStore(cfg config.Config) (*storage.LocalImageStore, error) {
	return storage.NewLocalImageStore(cfg.Server.UploadDir)
}
