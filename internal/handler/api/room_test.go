//go:build unit

package api_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"room-booking/internal/domain/room"
	"room-booking/internal/domain/user"
	"room-booking/internal/handler/api"
	reqdto "room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"
	"room-booking/tests/common/authtest"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/httptest"
	commandsmock "room-booking/tests/mock/commands"
	queriesmock "room-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	adminToken   string
	userToken    string
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	cfg := config.NewTestConfig()
	cfg.Server.MaxUploadBytes = 16

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)

	jwtHelper := authtest.NewJWTHelper(cfg.JWT)
	s.adminToken = jwtHelper.GenerateToken(s.T(), uuid.New(), "boss", user.RoleAdmin)
	s.userToken = jwtHelper.GenerateToken(s.T(), uuid.New(), "booker", user.RoleUser)

	h := api.NewRoomHandler(s.mockCommands, s.mockQueries, cfg.Server)
	authMw := newAuthMiddleware(cfg)

	s.router.GET("/rooms", h.List)
	s.router.GET("/rooms/open", h.ListOpen)
	s.router.GET("/rooms/:roomNumber", h.Get)
	admin := s.router.Group("/rooms", authMw.RequireAuth(), authMw.RequireRole(user.RoleAdmin))
	admin.POST("", h.Create)
	admin.PUT("/:roomNumber", h.Update)
	admin.PUT("/:roomNumber/open", h.Open)
	admin.PUT("/:roomNumber/close", h.Close)
	admin.DELETE("/:roomNumber", h.Delete)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestCreate() {
	rb := builder.NewRoomBuilder()
	fields := map[string]string{"title": rb.Title, "description": rb.Description, "address": rb.Address}

	s.Run("success: with image", func() {
		view := builder.NewRoomBuilder().WithImage("abc.png").BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), rb.BuildCreateRequestDTO(), gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ context.Context, _ reqdto.CreateRoomRequest, img *commands.ImageUpload) (*queries.RoomView, error) {
				s.Equal("photo.png", img.Filename)
				body, err := io.ReadAll(img.Content)
				s.Require().NoError(err)
				s.Equal("png-bytes", string(body))
				return view, nil
			}).Times(1)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/rooms", fields,
			&httptest.MultipartFile{Field: "image", Filename: "photo.png", Content: []byte("png-bytes")}, s.adminToken)

		var response resdto.RoomMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Room created successfully", response.Message)
		s.Require().NotNil(response.Room.Image)
		s.Equal("/uploads/abc.png", *response.Room.Image)
	})

	s.Run("success: without image", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), rb.BuildCreateRequestDTO(), gomock.Nil()).
			Return(rb.BuildView(), nil).Times(1)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/rooms", fields, nil, s.adminToken)

		var response resdto.RoomMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Nil(response.Room.Image)
	})

	s.Run("error: 400 when the image exceeds the upload limit", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/rooms", fields,
			&httptest.MultipartFile{Field: "image", Filename: "big.png", Content: make([]byte, 64)}, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "must not exceed 16 bytes")
	})

	s.Run("error: 400 without a title", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/rooms",
			map[string]string{"description": "no title"}, nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when the command rejects the fields", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errMarkedValidation(room.ErrTitleRequired)).Times(1)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/rooms", fields, nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, room.ErrTitleRequired.Error())
	})

	s.Run("error: 403 for a regular user", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/rooms", fields, nil, s.userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *RoomHandlerTestSuite) TestReads() {
	open := builder.NewRoomBuilder().WithNumber(2).AsOpen().BuildView()
	closed := builder.NewRoomBuilder().BuildView()

	s.Run("list", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.RoomView{closed, open}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("list open is routed before the room number", func() {
		s.mockQueries.EXPECT().ListOpen(gomock.Any()).Return([]*queries.RoomView{open}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/open", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.True(response[0].IsOpen)
	})

	s.Run("get", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), 2).Return(open, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/2", nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.RoomNumber)
	})

	s.Run("get missing", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), 9).Return(nil, shared.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/9", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "The specified room does not exist")
	})
}

func (s *RoomHandlerTestSuite) TestUpdate() {
	title := "Renamed"
	active := false

	s.Run("success: partial fields", func() {
		view := builder.NewRoomBuilder().WithTitle(title).BuildView()
		s.mockCommands.EXPECT().Update(gomock.Any(), 1, reqdto.UpdateRoomRequest{Title: &title, IsActive: &active}, gomock.Nil()).
			Return(view, nil).Times(1)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPut, "/rooms/1",
			map[string]string{"title": title, "isActive": "false"}, nil, s.adminToken)

		var response resdto.RoomMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Room updated successfully", response.Message)
		s.Equal(title, response.Room.Title)
	})

	s.Run("error: 404 for a missing room", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), 9, gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrRoomNotFound).Times(1)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPut, "/rooms/9",
			map[string]string{"title": title}, nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "The specified room does not exist")
	})
}

func (s *RoomHandlerTestSuite) TestOpenClose() {
	s.Run("open", func() {
		s.mockCommands.EXPECT().SetOpen(gomock.Any(), 3, true).
			Return(builder.NewRoomBuilder().WithNumber(3).AsOpen().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rooms/3/open", nil, s.adminToken)

		var response resdto.RoomMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Room opened successfully", response.Message)
		s.True(response.Room.IsOpen)
	})

	s.Run("close", func() {
		s.mockCommands.EXPECT().SetOpen(gomock.Any(), 3, false).
			Return(builder.NewRoomBuilder().WithNumber(3).BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rooms/3/close", nil, s.adminToken)

		var response resdto.RoomMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Room closed successfully", response.Message)
		s.False(response.Room.IsOpen)
	})
}

func (s *RoomHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), 4).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rooms/4", nil, s.adminToken)

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Room deleted successfully", response.Message)
	})

	s.Run("error: 404 for a missing room", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), 4).Return(shared.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rooms/4", nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "The specified room does not exist")
	})
}
