package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danceinaction/booking-api/internal/pkg/jwthelper"
)

func newAuthRouter(t *testing.T, signingKey string, admin bool) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	a := NewAuthenticator(signingKey)

	verify := a.VerifyJWT()
	if admin {
		verify = a.VerifyAdmin()
	}
	router.GET("/protected", verify, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": UserID(ctx)})
	})
	return router
}

func request(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestVerifyJWT(t *testing.T) {
	router := newAuthRouter(t, "key", false)

	token, err := jwthelper.GenerateToken([]byte("key"), "school-1", "user", time.Hour)
	require.NoError(t, err)

	resp := request(router, token)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "school-1")
}

func TestVerifyJWT_MissingOrInvalid(t *testing.T) {
	router := newAuthRouter(t, "key", false)

	assert.Equal(t, http.StatusUnauthorized, request(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(router, "not-a-token").Code)

	wrongKey, err := jwthelper.GenerateToken([]byte("other"), "school-1", "user", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, request(router, wrongKey).Code)
}

func TestVerifyAdmin(t *testing.T) {
	router := newAuthRouter(t, "key", true)

	adminToken, err := jwthelper.GenerateToken([]byte("key"), "admin", "admin", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, request(router, adminToken).Code)

	userToken, err := jwthelper.GenerateToken([]byte("key"), "school-1", "user", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, request(router, userToken).Code)
}

func TestVerifyJWT_Expired(t *testing.T) {
	router := newAuthRouter(t, "key", false)

	expired, err := jwthelper.GenerateToken([]byte("key"), "school-1", "user", -time.Minute)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, request(router, expired).Code)
}
