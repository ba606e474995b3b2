package shared

import "room-booking/internal/pkg/errs"

// Error taxonomy shared by commands and queries. Handlers map these to
// status codes; anything unmarked is an internal error.
var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrRoomNotFound    = errs.New("room not found")
	ErrSlotConflict    = errs.New("slot conflict")
	ErrValidation      = errs.New("validation error")
	ErrStorage         = errs.New("storage error")
)
