//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"shuttlebook/internal/domain/user"
	"shuttlebook/internal/handler/api"
	resdto "shuttlebook/internal/handler/dto/response"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/commands"
	"shuttlebook/internal/usecase/queries"
	"shuttlebook/internal/usecase/shared"
	"shuttlebook/tests/common/httptest"
	"shuttlebook/tests/common/testutil"
	commandsmock "shuttlebook/tests/mock/commands"
	queriesmock "shuttlebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	actorID      uuid.UUID
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	s.router.POST("/auth/signup", s.handler.Signup)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if c.GetHeader("Authorization") != "" {
			c.Set("actor", shared.Actor{UserID: s.actorID, Name: "Mika Tan", Email: "mika@example.com", Role: user.RoleMember})
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthHandlerTestSuite) authResult() *commands.AuthResult {
	entity, err := user.NewUser("Mika Tan", "mika@example.com", "hashed", user.RoleMember, time.Now())
	s.Require().NoError(err)
	return &commands.AuthResult{Token: "test-jwt-token", User: entity}
}

func (s *AuthHandlerTestSuite) TestSignup() {
	url := "/auth/signup"
	reqBody := map[string]any{"name": "Mika Tan", "email": "mika@example.com", "password": "password123"}

	s.Run("success: returns 201 with token and user", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), commands.SignupParams{
			Name: "Mika Tan", Email: "mika@example.com", Password: "password123",
		}).Return(s.authResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("test-jwt-token", response.Token)
		s.Equal("mika@example.com", response.User.Email)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing name", testutil.Field("name", nil)},
			{"missing email", testutil.Field("email", nil)},
			{"invalid email", testutil.Field("email", "not-an-email")},
			{"missing password", testutil.Field("password", nil)},
			{"short password", testutil.Field("password", strings.Repeat("a", 7))},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"email taken", errs.ErrEmailTaken, http.StatusConflict, "Email already registered"},
			{"domain validation", errs.ErrDomainValidation, http.StatusBadRequest, "Invalid signup details"},
			{"internal error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Signup(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]any{"email": "mika@example.com", "password": "password123"}

	s.Run("success: returns 200 OK for valid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), commands.LoginParams{
			Email: "mika@example.com", Password: "password123",
		}).Return(s.authResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotEmpty(response.Token)
	})

	s.Run("error: 401 for bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "mika@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current user info", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.actorID).
			Return(&queries.UserView{ID: s.actorID, Name: "Mika Tan", Email: "mika@example.com", Role: "member"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("mika@example.com", response.Email)
	})

	s.Run("error: 404 when the account no longer exists", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.actorID).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 500 when actor missing from context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
