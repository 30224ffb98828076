package middleware

import (
	"net/http"
	"strings"

	"valefood-be/internal/jwt"

	"github.com/gin-gonic/gin"
)

// Context keys populated by AuthMiddleware
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// AuthMiddleware validates the Bearer token and injects the claims into
// the request context.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required (Bearer <token>)",
			})
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireRole enforces that the authenticated caller has one of the allowed
// roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(CtxRole)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Role not found in token",
			})
			c.Abort()
			return
		}

		callerRole := roleVal.(string)
		for _, role := range roles {
			if callerRole == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied for role " + callerRole,
		})
		c.Abort()
	}
}
