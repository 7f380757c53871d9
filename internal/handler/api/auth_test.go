//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"voucher-ledger/internal/domain/auth"
	"voucher-ledger/internal/handler/api"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/handler/middleware"
	"voucher-ledger/internal/handler/validation"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/pkg/cookie"
	"voucher-ledger/internal/pkg/jwt"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"
	"voucher-ledger/internal/usecase/shared"
	"voucher-ledger/tests/common/builder"
	"voucher-ledger/tests/common/httptest"
	"voucher-ledger/tests/common/testutil"
	commandsmock "voucher-ledger/tests/mock/commands"
	queriesmock "voucher-ledger/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// withActor stands in for the auth middleware.
func withActor(actor shared.Actor, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetActor(c, actor)
		h(c)
	}
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	currentUser  *queries.AuthorizedUserView
}

func (s *AuthHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, jwtDuration(s.T(), cfg.JWT.AccessTokenDuration), jwtDuration(s.T(), cfg.JWT.RefreshTokenDuration))
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, cfg)
	s.currentUser = builder.NewUserBuilder().BuildReadModel()

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", withActor(shared.Actor{UserID: s.currentUser.ID}, s.handler.Me))
	s.router.GET("/auth/me-anonymous", s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) loginResult() *commands.LoginResult {
	return &commands.LoginResult{
		UserID:    s.currentUser.ID,
		TokenPair: &commands.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"},
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: returns tokens in body and cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(s.loginResult(), nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.currentUser.ID).
			Return(s.currentUser, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("access-token", response.AccessToken)
		s.Equal(s.currentUser.Email, response.User.Email)
		s.Positive(response.ExpiresIn)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Equal("access-token", access.Value)
		s.True(access.HttpOnly)
		s.NotNil(httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName))
	})

	s.Run("validation", func() {
		cases := []testCaseAuth{
			{name: "valid email", mutate: testutil.Field("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password of 8 chars", mutate: testutil.Field("password", "password"), expectCode: http.StatusOK},
			{name: "password of 7 chars", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusOK {
					email, _ := requestMap["email"].(string)
					password, _ := requestMap["password"].(string)
					s.mockCommands.EXPECT().Login(gomock.Any(), email, password).Return(s.loginResult(), nil)
					s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.currentUser.ID).Return(s.currentUser, nil)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorCode(s.T(), rec, tc.expectCode, httperr.CodeValidation)
				}
			})
		}
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
			{"inactive user", commands.ErrUserInactive, http.StatusUnauthorized, "user inactive"},
			{"unexpected", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, tc.wantMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"
	pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

	s.Run("success: token from body", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").Return(pair, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "old-refresh"}, "")

		var response resdto.TokenResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
		s.Equal("new-refresh", response.RefreshToken)
	})

	s.Run("success: token from cookie", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "cookie-refresh").Return(pair, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil,
			[]*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "cookie-refresh"}}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: no token at all", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	s.Run("error: rejected token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "bad").Return(nil, commands.ErrTokenValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"refresh_token": "bad"}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(access)
	s.Empty(access.Value)
	s.Negative(access.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns current user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.currentUser.ID).Return(s.currentUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.currentUser.Email, response.Email)
		s.Equal(s.currentUser.Role, response.Role)
	})

	s.Run("error: no actor in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me-anonymous", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, httperr.CodeUnauthorized)
	})

	s.Run("error: maps query errors", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{"user not found", queries.ErrUserNotFound, http.StatusNotFound, httperr.CodeNotFound},
			{"user inactive", queries.ErrUserInactive, http.StatusUnauthorized, httperr.CodeUnauthorized},
			{"unexpected", errors.New("database error"), http.StatusInternalServerError, httperr.CodeInternal},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.currentUser.ID).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
				httptest.AssertErrorCode(s.T(), rec, tc.wantStatus, tc.wantCode)
			})
		}
	})
}
