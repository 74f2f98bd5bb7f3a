package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Menatic/IT-Support/internal/shared/utils"
)

// ContextKeyUserID and ContextKeyUserRole are the gin context keys the auth
// middleware populates after token verification.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// ActorFromContext rebuilds the policy actor from the gin context. The second
// return value is false when the request was not authenticated.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	id, ok := c.Get(ContextKeyUserID)
	if !ok {
		return Actor{}, false
	}
	userID, ok := id.(uint)
	if !ok {
		return Actor{}, false
	}
	role, ok := c.Get(ContextKeyUserRole)
	if !ok {
		return Actor{}, false
	}
	roleStr, ok := role.(string)
	if !ok {
		return Actor{}, false
	}
	userRole := UserRole(roleStr)
	if !userRole.IsValid() {
		return Actor{}, false
	}
	return Actor{UserID: userID, Role: userRole}, true
}

// RequireAdmin aborts with 403 unless the authenticated user is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		if !actor.Role.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff aborts with 403 unless the authenticated user is an agent or
// an admin.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		if !actor.Role.IsStaff() {
			utils.ErrorResponse(c, http.StatusForbidden, "Staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
