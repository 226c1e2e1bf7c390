package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func adminToken(t *testing.T) string {
	t.Helper()
	user := &entity.User{Role: "admin"}
	user.ID = 1
	token, err := utils.GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func wsAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/admin/notifications", WSAuthMiddleware(testSecret, "admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

// The browser WebSocket API cannot set an Authorization header, so the
// handshake must authenticate via the token query parameter.
func TestWSAuthAcceptsQueryToken(t *testing.T) {
	r := wsAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/ws/admin/notifications?token="+adminToken(t), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWSAuthFallsBackToHeader(t *testing.T) {
	r := wsAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/ws/admin/notifications", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWSAuthRejectsMissingAndBadTokens(t *testing.T) {
	r := wsAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/ws/admin/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/ws/admin/notifications?token=garbage", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWSAuthRejectsNonAdminRole(t *testing.T) {
	r := wsAuthRouter()

	user := &entity.User{Role: "viewer"}
	user.ID = 2
	token, err := utils.GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ws/admin/notifications?token="+token, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
