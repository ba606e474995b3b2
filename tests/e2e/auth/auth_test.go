//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"room-booking/internal/domain/user"
	"room-booking/internal/handler/dto/request"
	resdto "room-booking/internal/handler/dto/response"
	"room-booking/tests/common/authtest"
	"room-booking/tests/common/dbtest"
	"room-booking/tests/common/httptest"
	"room-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	registerURL = "/api/auth/register"
	adminsURL   = "/api/auth/admins"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "alice", string(user.RoleUser))
	dbtest.CreateTestUser(s.T(), s.DB, "root", string(user.RoleAdmin))
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "valid login",
			username:       "alice",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "valid credentials log in",
		},
		{
			name:           "unknown user",
			username:       "nobody",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "unknown usernames are rejected",
		},
		{
			name:           "wrong password",
			username:       "alice",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "wrong passwords are rejected",
		},
		{
			name:           "empty username",
			username:       "",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "an empty username fails binding",
		},
		{
			name:           "empty password",
			username:       "alice",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "an empty password fails binding",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Username: tt.username, Password: tt.password}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken)
				require.Equal(t, int64(s.Config.JWT.Duration.Seconds()), loginRes.ExpiresIn)
				require.Equal(t, tt.username, loginRes.User.Username)
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
			}
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("new user can log in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Username: "bob", Password: "longenough"}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res resdto.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "bob", res.Username)
		require.Equal(t, string(user.RoleUser), res.Role)
		require.NotContains(t, w.Body.String(), "password")

		token := authtest.LoginUser(t, s.Router, "bob", "longenough")
		require.NotEmpty(t, token)
	})

	s.Run("duplicate username", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Username: "alice", Password: "longenough"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Username already taken")
	})

	s.Run("weak password", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL,
			request.RegisterRequest{Username: "carol", Password: "short"}, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *authSuite) TestRegisterAdmin() {
	s.Run("admin creates another admin", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "root", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminsURL,
			request.RegisterRequest{Username: "deputy", Password: "longenough"}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res resdto.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, string(user.RoleAdmin), res.Role)
	})

	s.Run("regular user is forbidden", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "alice", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminsURL,
			request.RegisterRequest{Username: "sneaky", Password: "longenough"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("logout clears the cookie", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Username: "alice", Password: dbtest.DefaultPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(w))
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // username, role, token
		expectedStatus int
		description    string
	}{
		{
			name: "admin profile",
			setupUser: func() (string, string, string) {
				role := string(user.RoleAdmin)
				return "boss", role, authtest.CreateAndLogin(s.T(), s.DB, s.Router, "boss", role)
			},
			expectedStatus: http.StatusOK,
			description:    "an admin can read their profile",
		},
		{
			name: "user profile",
			setupUser: func() (string, string, string) {
				role := string(user.RoleUser)
				return "booker", role, authtest.CreateAndLogin(s.T(), s.DB, s.Router, "booker", role)
			},
			expectedStatus: http.StatusOK,
			description:    "a user can read their profile",
		},
		{
			name: "invalid token",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "invalid tokens are rejected",
		},
		{
			name: "no token",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "anonymous callers are rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			username, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				responseBody := w.Body.String()
				require.Contains(t, responseBody, username)
				require.Contains(t, responseBody, role)
				require.NotContains(t, responseBody, "password")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiring", string(user.RoleUser))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, "expiring", user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestDeletedUserToken() {
	s.Run("token of a removed user finds no profile", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ghost", string(user.RoleUser))
		_, err := s.DB.Exec(t.Context(), "DELETE FROM users WHERE username = 'ghost'")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "User not found")
	})
}
