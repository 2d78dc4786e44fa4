package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles пропускает запрос, если у вызывающего есть хотя бы одна из
// перечисленных ролей.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	allowedSet := map[string]struct{}{}
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		v, exists := c.Get("roles")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no roles in context"})
			return
		}
		roles, _ := v.([]string)
		for _, r := range roles {
			if _, ok := allowedSet[r]; ok {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
