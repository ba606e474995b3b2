package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/booking"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra"
	"room-booking/internal/infra/metrics"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/availability"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opCancel = "cancel"
	opDelete = "delete"
)

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, actor uuid.UUID) (*queries.BookingView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest, actor uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID, actor uuid.UUID) (*queries.BookingView, error)
	Delete(ctx context.Context, id uuid.UUID, actor uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	events EventPublisher
	clock  clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, events EventPublisher, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		events: events,
		clock:  clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, actor uuid.UUID) (*queries.BookingView, error) {
	slot, err := req.ToSlot()
	if err != nil {
		return nil, c.fail(opCreate, errs.Mark(err, shared.ErrValidation))
	}
	details, err := req.ToDetails()
	if err != nil {
		return nil, c.fail(opCreate, errs.Mark(err, shared.ErrValidation))
	}

	var view *queries.BookingView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := reserveSlot(ctx, tx, slot, nil); err != nil {
			return err
		}

		b := booking.NewBooking(slot, details, actor, c.clock.Now())
		if err := tx.Bookings().Insert(ctx, b); err != nil {
			return classifyRepoErr(err, nil)
		}

		title, err := roomTitle(ctx, tx, b.RoomNumber())
		if err != nil {
			return err
		}
		view = queries.NewBookingView(b, title)
		return nil
	})
	if err != nil {
		return nil, c.fail(opCreate, err)
	}

	c.succeed(ctx, opCreate, EventBookingCreated, view, actor)
	return view, nil
}

// Update checks the room, then the new slot with the booking itself
// excluded, and only then whether the booking exists.
func (c *bookingCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest, actor uuid.UUID) (*queries.BookingView, error) {
	slot, err := req.ToSlot()
	if err != nil {
		return nil, c.fail(opUpdate, errs.Mark(err, shared.ErrValidation))
	}

	var view *queries.BookingView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := reserveSlot(ctx, tx, slot, &id); err != nil {
			return err
		}

		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return classifyRepoErr(err, shared.ErrBookingNotFound)
		}

		details, err := req.MergeDetails(b.Details())
		if err != nil {
			return errs.Mark(err, shared.ErrValidation)
		}

		b.Reschedule(slot, details, c.clock.Now())
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return classifyRepoErr(err, shared.ErrBookingNotFound)
		}

		title, err := roomTitle(ctx, tx, b.RoomNumber())
		if err != nil {
			return err
		}
		view = queries.NewBookingView(b, title)
		return nil
	})
	if err != nil {
		return nil, c.fail(opUpdate, err)
	}

	c.succeed(ctx, opUpdate, EventBookingUpdated, view, actor)
	return view, nil
}

// Cancel never consults availability. Cancelling twice is not an error.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, actor uuid.UUID) (*queries.BookingView, error) {
	var (
		view    *queries.BookingView
		changed bool
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return classifyRepoErr(err, shared.ErrBookingNotFound)
		}

		changed = b.Cancel(c.clock.Now())
		if changed {
			if err := tx.Bookings().Update(ctx, b); err != nil {
				return classifyRepoErr(err, shared.ErrBookingNotFound)
			}
		}

		title, err := roomTitle(ctx, tx, b.RoomNumber())
		if err != nil {
			return err
		}
		view = queries.NewBookingView(b, title)
		return nil
	})
	if err != nil {
		return nil, c.fail(opCancel, err)
	}

	if changed {
		c.succeed(ctx, opCancel, EventBookingCancelled, view, actor)
	} else {
		metrics.IncBookingOperation(opCancel, metrics.OutcomeSuccess)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor uuid.UUID) error {
	var view *queries.BookingView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return classifyRepoErr(err, shared.ErrBookingNotFound)
		}
		if err := tx.Bookings().Delete(ctx, id); err != nil {
			return classifyRepoErr(err, shared.ErrBookingNotFound)
		}
		view = queries.NewBookingView(b, "")
		return nil
	})
	if err != nil {
		return c.fail(opDelete, err)
	}

	c.succeed(ctx, opDelete, EventBookingDeleted, view, actor)
	return nil
}

// reserveSlot must run before any write that places a booking on slot. It
// takes the slot lock, then checks the room and the oracle on the same
// transaction.
func reserveSlot(ctx context.Context, tx shared.Tx, slot booking.Slot, excludeID *uuid.UUID) error {
	if err := tx.LockSlot(ctx, slot.RoomNumber(), slot.Date()); err != nil {
		return classifyRepoErr(err, nil)
	}

	exists, err := tx.Rooms().Exists(ctx, slot.RoomNumber())
	if err != nil {
		return classifyRepoErr(err, nil)
	}
	if !exists {
		return shared.ErrRoomNotFound
	}

	available, err := availability.NewOracle(tx.Bookings()).Check(ctx, slot, excludeID)
	metrics.ObserveAvailabilityCheck(available, err)
	if err != nil {
		return classifyRepoErr(err, nil)
	}
	if !available {
		return shared.ErrSlotConflict
	}
	return nil
}

// roomTitle tolerates a missing room; bookings carry no foreign key.
func roomTitle(ctx context.Context, tx shared.Tx, roomNumber int) (string, error) {
	rm, err := tx.Rooms().FindByNumber(ctx, roomNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil
		}
		return "", classifyRepoErr(err, nil)
	}
	return rm.Title(), nil
}

func (c *bookingCommandsImpl) fail(op string, err error) error {
	err = asUsecaseErr(err)
	metrics.IncBookingOperation(op, outcomeOf(err))
	if errs.IsAny(err, shared.ErrStorage) {
		slog.Error("booking operation failed", "operation", op, "error", err.Error())
	}
	return err
}

func (c *bookingCommandsImpl) succeed(ctx context.Context, op, eventKey string, view *queries.BookingView, actor uuid.UUID) {
	metrics.IncBookingOperation(op, metrics.OutcomeSuccess)
	slog.Info("booking "+op+" committed",
		"booking_id", view.ID.String(),
		"room_number", view.RoomNumber,
		"actor", actor.String(),
	)

	event := BookingEvent{
		BookingID:  view.ID.String(),
		RoomNumber: view.RoomNumber,
		Date:       view.Date,
		StartTime:  view.StartTime,
		EndTime:    view.EndTime,
		IsActive:   view.IsActive,
		Actor:      actor.String(),
	}
	if err := c.events.PublishJSON(ctx, eventKey, event); err != nil {
		slog.Warn("failed to publish booking event", "event", eventKey, "booking_id", view.ID.String(), "error", err.Error())
	}
}

// classifyRepoErr maps infrastructure errors onto the usecase taxonomy. An
// exclusion violation means another writer won the slot.
func classifyRepoErr(err error, notFound error) error {
	switch {
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, shared.ErrSlotConflict)
	default:
		return errs.Mark(err, shared.ErrStorage)
	}
}

// asUsecaseErr leaves classified errors alone and marks everything else,
// such as a failed commit, as a storage error.
func asUsecaseErr(err error) error {
	if errs.IsAny(err,
		shared.ErrValidation,
		shared.ErrRoomNotFound,
		shared.ErrBookingNotFound,
		shared.ErrSlotConflict,
		shared.ErrStorage,
	) {
		return err
	}
	return errs.Mark(err, shared.ErrStorage)
}

func outcomeOf(err error) string {
	switch {
	case errs.IsAny(err, shared.ErrSlotConflict):
		return metrics.OutcomeConflict
	case errs.IsAny(err, shared.ErrRoomNotFound, shared.ErrBookingNotFound):
		return metrics.OutcomeNotFound
	case errs.IsAny(err, shared.ErrValidation):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
