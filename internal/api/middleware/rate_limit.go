package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/mock-oms/pkg/response"
)

// RateLimit 进程级令牌桶限流，超限返回 429
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			response.Error(c, http.StatusTooManyRequests, response.CodeTooManyRequests, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
