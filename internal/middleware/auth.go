package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"codeatlas-gateway/internal/model"
	pkgResponse "codeatlas-gateway/pkg/response"
)

const scopeKey = "scope"

// Auth validates a Bearer access token, rejects revoked sessions, and
// injects the caller's scope into the gin context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(m.jwtSecret), nil
		})
		if err != nil || !tok.Valid {
			m.l.Warnf(ctx, "middleware.Auth: token rejected: %v", err)
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			pkgResponse.Unauthorized(c)
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)

		// Logout revokes the token id server-side; a structurally valid
		// token from a closed session must not pass.
		if jti, ok := claims["jti"].(string); ok && jti != "" && m.sessions != nil {
			revoked, err := m.sessions.Exists(ctx, "revoked:"+jti)
			if err != nil {
				m.l.Errorf(ctx, "middleware.Auth: revocation check: %v", err)
			}
			if revoked {
				pkgResponse.Unauthorized(c)
				c.Abort()
				return
			}
		}

		c.Set(scopeKey, model.Scope{UserID: int64(sub), Email: email})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth; zero-value when absent.
func GetScope(c *gin.Context) model.Scope {
	sc, _ := c.Value(scopeKey).(model.Scope)
	return sc
}
