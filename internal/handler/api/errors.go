package api

import (
	"errors"
	"net/http"
	"strconv"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgRoomNotFound       = "The specified room does not exist"
	msgBookingNotFound    = "Booking not found"
	msgSlotConflict       = "Room not available for the specified time slot"
	msgInternal           = "Internal server error"
	msgInvalidRequest     = "Invalid request"
	msgUnauthorized       = "Unauthorized"
	msgInvalidBookingID   = "Invalid booking id"
	msgInvalidRoomNumber  = "Invalid room number"
	msgUsernameTaken      = "Username already taken"
	msgInvalidCredentials = "Invalid username or password"
)

var (
	errMissingIdentity = errors.New("identity missing from context")
	errInvalidRoomNum  = errors.New("room number must be a positive 32-bit integer")
)

// abortWithUsecaseError maps the usecase error taxonomy onto HTTP statuses.
// Validation errors echo the domain message.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, shared.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgRoomNotFound, nil)
	case errors.Is(err, shared.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgBookingNotFound, nil)
	case errors.Is(err, queries.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, shared.ErrSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, msgSlotConflict, nil)
	case errors.Is(err, commands.ErrUsernameTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, msgUsernameTaken, nil)
	case errors.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msgInvalidCredentials, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}

func parseBookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBookingID, nil)
		return uuid.Nil, false
	}
	return id, true
}

func parseRoomNumber(c *gin.Context) (int, bool) {
	n, err := strconv.ParseInt(c.Param("roomNumber"), 10, 32)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRoomNumber, nil)
		return 0, false
	}
	if n <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidRoomNum, msgInvalidRoomNumber, nil)
		return 0, false
	}
	return int(n), true
}
