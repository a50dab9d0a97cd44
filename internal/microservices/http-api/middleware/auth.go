package middleware

import (
	"net/http"
	"strings"

	"mrp/internal/apperror"
	"mrp/internal/microservices/http-api/models"
	"mrp/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserKey   = "user"
	ContextUserIDKey = "userID"

	bearerPrefix = "Bearer "
)

// AuthMiddleware is a Gin middleware for bearer token authentication of API requests.
// The request is aborted with 401 before any handler runs when the token does not resolve to a user.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing or invalid.")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		user, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			status := apperror.HTTPStatus(apperror.KindOf(err))
			if status == http.StatusInternalServerError {
				LoggerFrom(c).Error("token validation failed", "error", err)
			}
			abortWithError(c, status, apperror.PublicMessage(err))
			return
		}

		// Set user info in context for handlers to use
		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)

		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// CurrentUserID returns the id of the authenticated caller.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
