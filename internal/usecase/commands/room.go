package commands

//go:generate mockgen -source=room.go -destination=../../../tests/mock/commands/room.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"room-booking/internal/domain/room"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra/storage"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"
)

type RoomCommands interface {
	Create(ctx context.Context, req reqdto.CreateRoomRequest, image *ImageUpload) (*queries.RoomView, error)
	Update(ctx context.Context, roomNumber int, req reqdto.UpdateRoomRequest, image *ImageUpload) (*queries.RoomView, error)
	SetOpen(ctx context.Context, roomNumber int, open bool) (*queries.RoomView, error)
	Delete(ctx context.Context, roomNumber int) error
}

type roomCommandsImpl struct {
	uow    shared.UnitOfWork
	images ImageStore
	cache  RoomCacheInvalidator
	clock  clock.Clock
}

func NewRoomCommands(uow shared.UnitOfWork, images ImageStore, cache RoomCacheInvalidator, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{
		uow:    uow,
		images: images,
		cache:  cache,
		clock:  clk,
	}
}

// Create numbers the room one above the current maximum. The numbering lock
// keeps two concurrent creates from taking the same number.
func (c *roomCommandsImpl) Create(ctx context.Context, req reqdto.CreateRoomRequest, image *ImageUpload) (*queries.RoomView, error) {
	stored, err := c.saveImage(ctx, image)
	if err != nil {
		return nil, err
	}

	var view *queries.RoomView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockRoomNumbering(ctx); err != nil {
			return classifyRepoErr(err, nil)
		}

		number, err := tx.Rooms().NextNumber(ctx)
		if err != nil {
			return classifyRepoErr(err, nil)
		}

		rm, err := room.NewRoom(number, req.ToAttributes(), stored, c.clock.Now())
		if err != nil {
			return errs.Mark(err, shared.ErrValidation)
		}
		if err := tx.Rooms().Insert(ctx, rm); err != nil {
			return classifyRepoErr(err, nil)
		}
		view = queries.NewRoomView(rm)
		return nil
	})
	if err != nil {
		c.removeImage(ctx, stored)
		return nil, asRoomErr(err)
	}

	c.invalidate(ctx, view.RoomNumber)
	slog.Info("room created", "room_number", view.RoomNumber)
	return view, nil
}

// Update applies only the provided fields. A new image replaces the old one,
// whose file is removed once the change is committed.
func (c *roomCommandsImpl) Update(ctx context.Context, roomNumber int, req reqdto.UpdateRoomRequest, image *ImageUpload) (*queries.RoomView, error) {
	stored, err := c.saveImage(ctx, image)
	if err != nil {
		return nil, err
	}

	var (
		view     *queries.RoomView
		previous *string
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByNumber(ctx, roomNumber)
		if err != nil {
			return classifyRepoErr(err, shared.ErrRoomNotFound)
		}

		now := c.clock.Now()
		if err := rm.UpdateAttributes(req.MergeAttributes(rm.Attributes()), now); err != nil {
			return errs.Mark(err, shared.ErrValidation)
		}
		if req.IsActive != nil {
			rm.SetActive(*req.IsActive, now)
		}
		if stored != nil {
			previous = rm.ReplaceImage(stored, now)
		}

		if err := tx.Rooms().Update(ctx, rm); err != nil {
			return classifyRepoErr(err, shared.ErrRoomNotFound)
		}
		view = queries.NewRoomView(rm)
		return nil
	})
	if err != nil {
		c.removeImage(ctx, stored)
		return nil, asRoomErr(err)
	}

	c.removeImage(ctx, previous)
	c.invalidate(ctx, roomNumber)
	slog.Info("room updated", "room_number", roomNumber)
	return view, nil
}

func (c *roomCommandsImpl) SetOpen(ctx context.Context, roomNumber int, open bool) (*queries.RoomView, error) {
	var view *queries.RoomView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByNumber(ctx, roomNumber)
		if err != nil {
			return classifyRepoErr(err, shared.ErrRoomNotFound)
		}

		if open {
			rm.Open(c.clock.Now())
		} else {
			rm.Close(c.clock.Now())
		}

		if err := tx.Rooms().Update(ctx, rm); err != nil {
			return classifyRepoErr(err, shared.ErrRoomNotFound)
		}
		view = queries.NewRoomView(rm)
		return nil
	})
	if err != nil {
		return nil, asRoomErr(err)
	}

	c.invalidate(ctx, roomNumber)
	slog.Info("room availability changed", "room_number", roomNumber, "is_open", open)
	return view, nil
}

// Delete leaves the room's bookings in place; they keep the number and lose
// the title.
func (c *roomCommandsImpl) Delete(ctx context.Context, roomNumber int) error {
	var image *string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByNumber(ctx, roomNumber)
		if err != nil {
			return classifyRepoErr(err, shared.ErrRoomNotFound)
		}
		if err := tx.Rooms().Delete(ctx, roomNumber); err != nil {
			return classifyRepoErr(err, shared.ErrRoomNotFound)
		}
		image = rm.Image()
		return nil
	})
	if err != nil {
		return asRoomErr(err)
	}

	c.removeImage(ctx, image)
	c.invalidate(ctx, roomNumber)
	slog.Info("room deleted", "room_number", roomNumber)
	return nil
}

func (c *roomCommandsImpl) saveImage(ctx context.Context, image *ImageUpload) (*string, error) {
	if image == nil {
		return nil, nil
	}
	name, err := c.images.Save(ctx, image.Filename, image.Content)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImage) {
			return nil, errs.Mark(err, shared.ErrValidation)
		}
		return nil, errs.Mark(err, shared.ErrStorage)
	}
	return &name, nil
}

func (c *roomCommandsImpl) removeImage(ctx context.Context, name *string) {
	if name == nil {
		return
	}
	if err := c.images.Remove(ctx, *name); err != nil {
		slog.Warn("failed to remove room image", "image", *name, "error", err.Error())
	}
}

func (c *roomCommandsImpl) invalidate(ctx context.Context, roomNumber int) {
	if err := c.cache.InvalidateRoom(ctx, roomNumber); err != nil {
		slog.Warn("failed to invalidate room cache", "room_number", roomNumber, "error", err.Error())
	}
}

func asRoomErr(err error) error {
	err = asUsecaseErr(err)
	if errs.IsAny(err, shared.ErrStorage) {
		slog.Error("room operation failed", "error", err.Error())
	}
	return err
}
