package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tajuwa/clickbit_backend/internal/apperrors"
	"github.com/tajuwa/clickbit_backend/internal/core/domain"
	portssvc "github.com/tajuwa/clickbit_backend/internal/core/ports/services"
	"github.com/tajuwa/clickbit_backend/internal/core/services"
	"github.com/tajuwa/clickbit_backend/internal/middleware"
	"github.com/tajuwa/clickbit_backend/internal/platform/config"
	"github.com/tajuwa/clickbit_backend/internal/utils"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type SessionAuthMiddlewareTestSuite struct {
	suite.Suite
	cfg         *config.Config
	tokenSvc    portssvc.TokenSvcFacade
	mockUserSvc *MockUserService
	router      *gin.Engine
	userID      string
}

func (suite *SessionAuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		SecretKey:                "test-secret-key-that-is-long-enough",
		Algorithm:                "HS256",
		AccessTokenExpireMinutes: 30,
		RefreshTokenExpireDays:   7,
		SessionCookieName:        "user_session",
		SessionCookieDomain:      "localhost",
	}
	suite.tokenSvc = services.NewTokenService(suite.cfg)
	suite.mockUserSvc = new(MockUserService)
	suite.userID = uuid.NewString()

	suite.router = gin.New()
	suite.router.Use(middleware.SessionAuthMiddleware(suite.cfg, suite.tokenSvc, suite.mockUserSvc))
	suite.router.GET("/protected", func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user id missing from context"})
			return
		}
		user, ok := middleware.GetCurrentUserFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user missing from context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": user.Email})
	})
}

func (suite *SessionAuthMiddlewareTestSuite) sessionUser() *domain.User {
	return &domain.User{
		UserID:       suite.userID,
		FirstName:    "Jordan",
		Email:        "jordan@example.com",
		Role:         domain.RoleBuyer,
		IsActive:     true,
		TokenVersion: 2,
	}
}

func (suite *SessionAuthMiddlewareTestSuite) mintToken(user *domain.User) string {
	token, _, err := suite.tokenSvc.CreateAccessToken(context.Background(), user)
	suite.Require().NoError(err)
	return token
}

func (suite *SessionAuthMiddlewareTestSuite) serve(cookie string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: suite.cfg.SessionCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *SessionAuthMiddlewareTestSuite) TestMissingCookie() {
	w := suite.serve("")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error":"Token not received"}`, w.Body.String())
	suite.mockUserSvc.AssertNotCalled(suite.T(), "GetUserByID")
}

func (suite *SessionAuthMiddlewareTestSuite) TestExpiredToken() {
	user := suite.sessionUser()
	expired, err := utils.GenerateSessionJWT(&utils.SessionClaims{
		UserName:     user.FirstName,
		UserEmail:    user.Email,
		Role:         string(user.Role),
		TokenVersion: user.TokenVersion,
		TokenType:    utils.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.UserID,
		},
	}, suite.cfg.SecretKey, jwt.SigningMethodHS256, -time.Minute)
	suite.Require().NoError(err)

	w := suite.serve(expired)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Token has expired"}`, w.Body.String())
}

func (suite *SessionAuthMiddlewareTestSuite) TestGarbageToken() {
	w := suite.serve("not.a.token")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Could not validate credentials"}`, w.Body.String())
}

func (suite *SessionAuthMiddlewareTestSuite) TestRefreshTokenRejected() {
	refresh, _, err := suite.tokenSvc.CreateRefreshToken(context.Background(), suite.sessionUser())
	suite.Require().NoError(err)

	w := suite.serve(refresh)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Could not validate credentials"}`, w.Body.String())
}

func (suite *SessionAuthMiddlewareTestSuite) TestMissingRequiredClaim() {
	user := suite.sessionUser()
	// Properly signed and unexpired, but the email claim is absent.
	token, err := utils.GenerateSessionJWT(&utils.SessionClaims{
		UserName:     user.FirstName,
		UserEmail:    "",
		Role:         string(user.Role),
		TokenVersion: user.TokenVersion,
		TokenType:    utils.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.UserID,
		},
	}, suite.cfg.SecretKey, jwt.SigningMethodHS256, time.Hour)
	suite.Require().NoError(err)

	w := suite.serve(token)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Could not validate credentials"}`, w.Body.String())
	suite.mockUserSvc.AssertNotCalled(suite.T(), "GetUserByID")
}

func (suite *SessionAuthMiddlewareTestSuite) TestMalformedSubject() {
	user := suite.sessionUser()
	user.UserID = "not-a-uuid"

	w := suite.serve(suite.mintToken(user))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Could not validate credentials"}`, w.Body.String())
	suite.mockUserSvc.AssertNotCalled(suite.T(), "GetUserByID")
}

func (suite *SessionAuthMiddlewareTestSuite) TestUserNotFound() {
	suite.mockUserSvc.On("GetUserByID", mock.Anything, suite.userID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(suite.mintToken(suite.sessionUser()))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Could not validate credentials"}`, w.Body.String())
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *SessionAuthMiddlewareTestSuite) TestStaleTokenVersion() {
	// The token carries version 2, but a later logout bumped the stored value.
	tokenUser := suite.sessionUser()
	storedUser := suite.sessionUser()
	storedUser.TokenVersion = 3

	suite.mockUserSvc.On("GetUserByID", mock.Anything, suite.userID).Return(storedUser, nil).Once()

	w := suite.serve(suite.mintToken(tokenUser))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.JSONEq(`{"error":"Could not validate credentials"}`, w.Body.String())
}

func (suite *SessionAuthMiddlewareTestSuite) TestValidSession() {
	user := suite.sessionUser()
	suite.mockUserSvc.On("GetUserByID", mock.Anything, suite.userID).Return(user, nil).Once()

	w := suite.serve(suite.mintToken(user))

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), suite.userID)
	suite.Contains(w.Body.String(), "jordan@example.com")
	suite.mockUserSvc.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSessionAuthMiddleware(t *testing.T) {
	suite.Run(t, new(SessionAuthMiddlewareTestSuite))
}
