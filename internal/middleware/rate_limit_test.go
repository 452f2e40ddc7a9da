package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payslip/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", c.GetHeader("X-User"))
		c.Next()
	})
	r.POST("/commit", middleware.RateLimitByUser(0, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	call := func(user string) int {
		req := httptest.NewRequest(http.MethodPost, "/commit", nil)
		req.Header.Set("X-User", user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("u1"))
	assert.Equal(t, http.StatusTooManyRequests, call("u1"))
	// buckets are per user
	assert.Equal(t, http.StatusOK, call("u2"))
	// anonymous requests are not limited
	assert.Equal(t, http.StatusOK, call(""))
	assert.Equal(t, http.StatusOK, call(""))
}
