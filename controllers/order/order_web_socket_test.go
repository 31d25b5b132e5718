package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/ws", OrderWebSocketHandler)
	return r
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "ws_test",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("ws-test-secret"))
	require.NoError(t, err)
	return signed
}

// The order feed carries customer contact details, so the handshake is
// refused without a valid admin token.
func TestOrderWebSocketRequiresToken(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/ws", nil)
	wsRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderWebSocketRejectsNonAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "ws-test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/ws?token="+signToken(t, "guest"), nil)
	wsRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
