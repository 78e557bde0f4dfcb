package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/mock-oms/config"
	"github.com/d60-Lab/mock-oms/pkg/response"
)

const authRealm = `Basic realm="OMS API"`

// BasicAuth 校验 HTTP Basic 凭据；配置了 password_hash 时用 bcrypt 比对
func BasicAuth(cfg config.AuthConfig) gin.HandlerFunc {
	check := plainChecker(cfg.Password)
	if cfg.PasswordHash != "" {
		check = bcryptChecker(cfg.PasswordHash)
	}
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Header("WWW-Authenticate", authRealm)
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Authentication required", nil)
			return
		}
		user, pass, ok := c.Request.BasicAuth()
		if !ok {
			response.Unauthorized(c, "Invalid authorization header")
			return
		}
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.Username)) == 1
		if !check(pass) || !userOK {
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		c.Set(gin.AuthUserKey, user)
		c.Next()
	}
}

func plainChecker(expected string) func(string) bool {
	return func(pass string) bool {
		return subtle.ConstantTimeCompare([]byte(pass), []byte(expected)) == 1
	}
}

func bcryptChecker(hash string) func(string) bool {
	return func(pass string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)) == nil
	}
}
