//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/user"
	"room-booking/internal/handler/api"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"
	"room-booking/tests/common/authtest"
	"room-booking/tests/common/builder"
	"room-booking/tests/common/httptest"
	"room-booking/tests/common/testutil"
	commandsmock "room-booking/tests/mock/commands"
	queriesmock "room-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	actorID      uuid.UUID
	userToken    string
	adminToken   string
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	cfg := config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)

	jwtHelper := authtest.NewJWTHelper(cfg.JWT)
	s.actorID = uuid.New()
	s.userToken = jwtHelper.GenerateToken(s.T(), s.actorID, "booker", user.RoleUser)
	s.adminToken = jwtHelper.GenerateToken(s.T(), s.actorID, "boss", user.RoleAdmin)

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	authMw := newAuthMiddleware(cfg)

	g := s.router.Group("/bookings", authMw.RequireAuth())
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/availability", h.CheckAvailability)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id/cancel", h.Cancel)
	g.DELETE("/:id", authMw.RequireRole(user.RoleAdmin), h.Delete)
	s.router.GET("/rooms/:roomNumber/bookings", authMw.RequireAuth(), h.ListByRoom)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: 201 with the created booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.actorID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.userToken)

		var response resdto.BookingMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Booking created successfully", response.Message)
		s.Require().NotNil(response.Booking)
		s.Equal(view.ID, response.Booking.ID)
		s.Equal("Room E", response.Booking.RoomTitle)
		s.Equal("10:00", response.Booking.StartTime)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 400 on missing required fields", func() {
		for _, field := range []string{"roomNumber", "name", "date", "startTime", "endTime", "phone", "department"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.userToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "inverted interval", err: errMarkedValidation(booking.ErrInvalidInterval), expectedStatus: http.StatusBadRequest, expectedMsg: booking.ErrInvalidInterval.Error()},
			{name: "unknown room", err: shared.ErrRoomNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "The specified room does not exist"},
			{name: "slot taken", err: shared.ErrSlotConflict, expectedStatus: http.StatusConflict, expectedMsg: "Room not available for the specified time slot"},
			{name: "store down", err: errMarked(errors.New("connection refused"), shared.ErrStorage), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.actorID).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.userToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: returns every booking", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().WithTimes("12:00", "13:00").AsCancelled().BuildView(),
		}
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, s.userToken)

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.False(response[1].IsActive)
	})

	s.Run("success: empty list renders as an array", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, s.userToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	base := "/bookings/availability?roomNumber=5&date=2025-07-01&startTime=10:30&endTime=11:30"

	s.Run("success: reports availability", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), queries.AvailabilityInput{
			RoomNumber: 5, Date: "2025-07-01", StartTime: "10:30", EndTime: "11:30",
		}).Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, s.userToken)

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
	})

	s.Run("success: passes excludeId through", func() {
		exclude := uuid.New()
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), queries.AvailabilityInput{
			RoomNumber: 5, Date: "2025-07-01", StartTime: "10:30", EndTime: "11:30", ExcludeID: &exclude,
		}).Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"&excludeId="+exclude.String(), nil, s.userToken)

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
	})

	s.Run("error: 400 on malformed excludeId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"&excludeId=nope", nil, s.userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("error: 400 on missing parameters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/availability?roomNumber=5", nil, s.userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, s.userToken)

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/123", nil, s.userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, shared.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, s.userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestUpdate() {
	b := builder.NewBookingBuilder().WithTimes("14:00", "15:00")
	reqBody := b.BuildUpdateRequestDTO()
	view := b.BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody, s.actorID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.userToken)

		var response resdto.BookingMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking updated successfully", response.Message)
		s.Equal("14:00", response.Booking.StartTime)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "slot taken", err: shared.ErrSlotConflict, expectedStatus: http.StatusConflict, expectedMsg: "Room not available"},
			{name: "unknown booking", err: shared.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking not found"},
			{name: "unknown room", err: shared.ErrRoomNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "The specified room does not exist"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, reqBody, s.actorID).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.userToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	view := builder.NewBookingBuilder().AsCancelled().BuildView()
	url := "/bookings/" + view.ID.String() + "/cancel"

	s.Run("success", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID, s.actorID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.userToken)

		var response resdto.BookingMutationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking canceled successfully", response.Message)
		s.False(response.Booking.IsActive)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID, s.actorID).Return(nil, shared.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, s.userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/bookings/" + id.String()

	s.Run("success: admin deletes", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id, s.actorID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.adminToken)

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking deleted successfully", response.Message)
	})

	s.Run("error: 403 for a regular user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *BookingHandlerTestSuite) TestListByRoom() {
	views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}

	s.Run("success: defaults to active", func() {
		s.mockQueries.EXPECT().ListByRoomAndStatus(gomock.Any(), 5, true).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/5/bookings", nil, s.userToken)

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: inactive status", func() {
		s.mockQueries.EXPECT().ListByRoomAndStatus(gomock.Any(), 5, false).Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/5/bookings?status=inactive", nil, s.userToken)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/5/bookings?status=archived", nil, s.userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on invalid room number", func() {
		for _, n := range []string{"0", "-3", "abc", "99999999999"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+n+"/bookings", nil, s.userToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room number")
		}
	})
}
