package middleware

import (
	"errors"
	"strings"

	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/pkg/apperrors"
	"jobmatch_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - проверка Bearer-токена identity provider'а
func AuthMiddleware(verifier *auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		claims, err := verifier.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				apperrors.HandleError(c, apperrors.ErrTokenExpired)
				return
			}
			logger.CtxWarn(c.Request.Context(), "Rejected token", "error", err.Error(), "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(contextkeys.UserIDKey, claims.UserID())
		c.Set(contextkeys.UserTypeKey, claims.UserType)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID()))
		c.Next()
	}
}

// RequirePermission пропускает только типы пользователей с разрешением perm
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := c.GetString(contextkeys.UserTypeKey)
		if userType == "" {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: no user type"))
			return
		}

		if !auth.HasPermission(userType, perm) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: insufficient permissions"))
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey)
}
