package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jagadeeshwarid/TaskTrackerPro/types"
	"github.com/jagadeeshwarid/TaskTrackerPro/utils"
)

const principalContextKey = "principal"

// AuthMiddleware parses the bearer token and stores the Principal in
// the request context. Every protected handler reads it from there
// and passes it into the services explicitly.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Authorization header is required",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := utils.ParseUserToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.DataResponse{
				Status:  false,
				Message: "Invalid token",
			})
			return
		}

		c.Set(principalContextKey, types.Principal{
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Next()
	}
}

// AdminAuthMiddleware additionally requires the admin role. It runs
// after AuthMiddleware on the admin route group.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, types.DataResponse{
				Status:  false,
				Message: "Admin privileges required",
			})
			return
		}
		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (types.Principal, bool) {
	v, exists := c.Get(principalContextKey)
	if !exists {
		return types.Principal{}, false
	}
	principal, ok := v.(types.Principal)
	return principal, ok
}
