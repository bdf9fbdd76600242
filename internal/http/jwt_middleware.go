package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"buyer-quiz/internal/service"
)

const authClaimsKey = "auth_claims"

// JWTAuthMiddleware validates admin access tokens and stores claims in the
// request context.
func JWTAuthMiddleware(authSvc *service.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "admin auth not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := authSvc.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims reads admin JWT claims from the request context.
func GetAuthClaims(c *gin.Context) (service.AdminClaims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return service.AdminClaims{}, false
	}
	claims, ok := val.(service.AdminClaims)
	return claims, ok
}
