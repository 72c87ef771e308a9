package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/entity"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": utils.CurrentUserID(c),
			"role":   utils.CurrentRole(c),
		})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	customerToken, err := utils.GenerateToken(7, entity.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(1, entity.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		w := doGet(testRouter(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(testRouter(), "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		forged, err := utils.GenerateToken(7, entity.RoleAdmin, "other-secret", time.Hour)
		require.NoError(t, err)
		w := doGet(testRouter(), forged)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := utils.GenerateToken(7, entity.RoleCustomer, testSecret, -time.Minute)
		require.NoError(t, err)
		w := doGet(testRouter(), expired)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		w := doGet(testRouter(), customerToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":7`)
	})

	t.Run("role required, customer rejected", func(t *testing.T) {
		w := doGet(testRouter(entity.RoleAdmin), customerToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("role required, admin allowed", func(t *testing.T) {
		w := doGet(testRouter(entity.RoleAdmin), adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
