package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ctxWithIdentity(userID, role string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("user_id", userID)
	c.Set("role", role)
	return c
}

func TestRequesterMayAccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		userID  string
		role    string
		ownerID string
		want    bool
	}{
		{"admin reads anyone", "admin_1", "admin", "guest_9", true},
		{"customer reads own", "user_7", "customer", "user_7", true},
		{"customer blocked from others", "user_7", "customer", "user_8", false},
		{"guest blocked from others", "guest_1", "guest", "user_7", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ctxWithIdentity(tt.userID, tt.role)
			assert.Equal(t, tt.want, requesterMayAccess(c, tt.ownerID))
		})
	}
}

// A non-admin token asking for another user's order list is refused
// before any lookup runs.
func TestGetUserOrdersForbiddenForOtherUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/orders/user/:userID", func(c *gin.Context) {
		c.Set("user_id", "guest_a")
		c.Set("role", "guest")
		c.Next()
	}, GetUserOrdersHandler(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/user/guest_b", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
