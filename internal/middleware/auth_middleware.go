package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentms/internal/app/models"
	"github.com/yigit/studentms/internal/app/models/dto"
	"github.com/yigit/studentms/internal/pkg/auth"
	"github.com/yigit/studentms/internal/pkg/logger"
)

// Context keys set by Authenticate
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// Role gate messages
const (
	MsgAccessDenied      = "Access Denied"
	MsgInvalidToken      = "Invalid Token"
	MsgAdminOnly         = "Access Denied: Admin Only"
	MsgAdminOrMentorOnly = "Access Denied: Admin or Mentor Only"
)

// TokenVerifier validates session tokens
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and stores the claim in the context.
// A missing token is 403, an unusable one is 400. No role is checked here.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(MsgAccessDenied))
			return
		}

		claims, err := m.verifier.Verify(tokenString)
		if err != nil {
			logger.Debug().Err(err).Str("path", c.FullPath()).Msg("Rejected token")
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(MsgInvalidToken))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RequireAdmin allows only ADMIN
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRoles(MsgAdminOnly, models.RoleAdmin)
}

// RequireMentorOrAdmin allows ADMIN and MENTOR
func (m *AuthMiddleware) RequireMentorOrAdmin() gin.HandlerFunc {
	return m.RequireRoles(MsgAdminOrMentorOnly, models.RoleAdmin, models.RoleMentor)
}

// RequireRoles rejects with 403 and message unless the authenticated role is one of roles.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRoles(message string, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(MsgAccessDenied))
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(message))
	}
}

// CurrentUserID returns the authenticated user id
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// CurrentRole returns the authenticated role
func CurrentRole(c *gin.Context) (models.Role, bool) {
	v, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}
