package api

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const imageField = "image"

var errImageTooLarge = errors.New("image exceeds upload limit")

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
	cfg  config.ServerConfig
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries, cfg config.ServerConfig) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary Create room
// @Description Create a room numbered one above the current highest
// @Tags rooms
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param address formData string false "Address"
// @Param image formData file false "Room image"
// @Success 201 {object} resdto.RoomMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	image, closeImage, ok := h.readImage(c)
	if !ok {
		return
	}
	defer closeImage()

	view, err := h.cmds.Create(c.Request.Context(), req, image)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.RoomMutationResponse{
		Message: "Room created successfully",
		Room:    resdto.FromRoomView(view, h.cfg.PublicUploadPath),
	})
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views, h.cfg.PublicUploadPath))
}

// @Summary List open rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms/open [get]
func (h *RoomHandler) ListOpen(c *gin.Context) {
	views, err := h.q.ListOpen(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views, h.cfg.PublicUploadPath))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param roomNumber path int true "Room number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{roomNumber} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	roomNumber, ok := parseRoomNumber(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), roomNumber)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view, h.cfg.PublicUploadPath))
}

// @Summary Update room
// @Description Update the provided fields; a new image replaces the old one
// @Tags rooms
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param roomNumber path int true "Room number"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param address formData string false "Address"
// @Param isActive formData bool false "Active flag"
// @Param image formData file false "Room image"
// @Success 200 {object} resdto.RoomMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{roomNumber} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	roomNumber, ok := parseRoomNumber(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	image, closeImage, ok := h.readImage(c)
	if !ok {
		return
	}
	defer closeImage()

	view, err := h.cmds.Update(c.Request.Context(), roomNumber, req, image)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RoomMutationResponse{
		Message: "Room updated successfully",
		Room:    resdto.FromRoomView(view, h.cfg.PublicUploadPath),
	})
}

// @Summary Open room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomNumber path int true "Room number"
// @Success 200 {object} resdto.RoomMutationResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{roomNumber}/open [put]
func (h *RoomHandler) Open(c *gin.Context) {
	h.setOpen(c, true, "Room opened successfully")
}

// @Summary Close room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomNumber path int true "Room number"
// @Success 200 {object} resdto.RoomMutationResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{roomNumber}/close [put]
func (h *RoomHandler) Close(c *gin.Context) {
	h.setOpen(c, false, "Room closed successfully")
}

// @Summary Delete room
// @Description Delete a room and its image file
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param roomNumber path int true "Room number"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{roomNumber} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	roomNumber, ok := parseRoomNumber(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), roomNumber); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Room deleted successfully"})
}

func (h *RoomHandler) setOpen(c *gin.Context, open bool, message string) {
	roomNumber, ok := parseRoomNumber(c)
	if !ok {
		return
	}
	view, err := h.cmds.SetOpen(c.Request.Context(), roomNumber, open)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RoomMutationResponse{
		Message: message,
		Room:    resdto.FromRoomView(view, h.cfg.PublicUploadPath),
	})
}

// readImage returns a nil upload when the form has no image part. The
// returned close func is always safe to call.
func (h *RoomHandler) readImage(c *gin.Context) (*commands.ImageUpload, func(), bool) {
	noop := func() {}

	fh, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, true
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return nil, noop, false
	}

	if h.cfg.MaxUploadBytes > 0 && fh.Size > h.cfg.MaxUploadBytes {
		msg := fmt.Sprintf("Image must not exceed %d bytes", h.cfg.MaxUploadBytes)
		httperr.AbortWithError(c, http.StatusBadRequest, errImageTooLarge, msg, nil)
		return nil, noop, false
	}

	file, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return nil, noop, false
	}
	return &commands.ImageUpload{Filename: fh.Filename, Content: file}, closer(file), true
}

func closer(f multipart.File) func() {
	return func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close uploaded image", "error", err.Error())
		}
	}
}
