package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"netlist-visualizer-backend/internal/auth"
	apperrors "netlist-visualizer-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestValidateJWT_RoundTrip(t *testing.T) {
	service := auth.NewAuthService(testSecret)

	token, err := service.GenerateToken("alice", time.Hour)
	require.NoError(t, err)

	userID, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", userID)
}

func TestValidateJWT_Rejections(t *testing.T) {
	service := auth.NewAuthService(testSecret)

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateJWT("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := auth.NewAuthService("other-secret")
		token, err := other.GenerateToken("alice", time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := service.GenerateToken("alice", -time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("alg none", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: "alice"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := auth.NewAuthService(testSecret)
	middleware := auth.NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/whoami", middleware.OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": auth.CurrentUser(c)})
	})
	return router, service
}

func TestOptionalAuth_NoHeaderIsAnonymous(t *testing.T) {
	router, _ := setupAuthRouter(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"user": "anonymous"}`, recorder.Body.String())
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	router, service := setupAuthRouter(t)

	token, err := service.GenerateToken("bob", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"user": "bob"}`, recorder.Body.String())
}

func TestOptionalAuth_PresentButInvalidIsRejected(t *testing.T) {
	router, _ := setupAuthRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"bad token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			req.Header.Set("Authorization", tt.header)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestCurrentUser_FallsBackToAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, auth.AnonymousUser, auth.CurrentUser(c))

	c.Set("user_id", "carol")
	assert.Equal(t, "carol", auth.CurrentUser(c))
}
