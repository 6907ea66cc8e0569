package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/assessment-api/internal/domain/entity"
	apperrors "github.com/yourusername/assessment-api/internal/pkg/errors"
	"github.com/yourusername/assessment-api/pkg/auth"
)

// ContextUserKey holds the authenticated *entity.User
const ContextUserKey = "user"

// TokenParser verifies bearer tokens
type TokenParser interface {
	ParseToken(tokenString string) (*auth.Claims, error)
}

// UserLoader resolves the token subject to a live account with roles
type UserLoader interface {
	GetByUUID(ctx context.Context, uuid string) (*entity.User, error)
}

// AuthMiddleware authenticates requests with a bearer token
type AuthMiddleware struct {
	tokens TokenParser
	users  UserLoader
	logger *zap.Logger
}

func NewAuthMiddleware(tokens TokenParser, users UserLoader, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, logger: logger.Named("auth")}
}

func unauthorized(c *gin.Context, message, errorType string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message, "error_type": errorType})
}

// RequireAuth loads the requesting user into the context. Inactive or
// deleted accounts are rejected even with a valid token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "Authorization header is required", "token_missing")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			unauthorized(c, "Authorization header format must be Bearer {token}", "token_format")
			return
		}

		claims, err := m.tokens.ParseToken(parts[1])
		if err != nil {
			m.logger.Debug("token rejected", zap.Error(err))
			if errors.Is(err, auth.ErrTokenExpired) {
				unauthorized(c, "Token has expired", "token_expired")
				return
			}
			unauthorized(c, "Invalid token", "token_invalid")
			return
		}

		user, err := m.users.GetByUUID(c.Request.Context(), claims.UserUUID())
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				unauthorized(c, "User not found", "user_not_found")
				return
			}
			m.logger.Error("failed to load user", zap.String("user_uuid", claims.UserUUID()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "error_type": "internal"})
			return
		}
		if !user.CanTakeAssessments() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is disabled", "error_type": "account_disabled"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// AdminOnly must run after RequireAuth
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			unauthorized(c, "Unauthorized", "token_missing")
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin rights required", "error_type": "forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by RequireAuth
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}
