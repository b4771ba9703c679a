package middleware

import (
	"log"
	"net/http"

	"hireflow/internal/models"
	"hireflow/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// RequireRole guards a route group behind a role capability check. It
// must run after JWTAuthMiddleware. Authenticated callers with the wrong
// role receive Forbidden, not Unauthorized.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetCurrentUser(c)
		if err != nil {
			log.Printf("Role middleware: %v", err)
			abortUnauthorized(c, "Authentication required")
			return
		}

		if user.Role != role {
			log.Printf("Role middleware: user %s (%s) denied access to %s route", user.Email, user.Role, role)
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(http.StatusForbidden, "You do not have permission to perform this action", c.Request.URL.Path))
			return
		}

		c.Next()
	}
}
