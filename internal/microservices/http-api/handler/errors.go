package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"mrp/internal/apperror"
	"mrp/internal/microservices/http-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError writes err as {"error": msg} with the status of its kind.
// Internal causes are logged and never sent to the client.
func respondError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)
	if kind == apperror.KindInternal {
		middleware.LoggerFrom(c).Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
	}
	c.JSON(status, gin.H{"error": apperror.PublicMessage(err)})
}

// bindJSON decodes the request body into dst and converts binding failures into validation errors.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperror.Validation(describeFieldError(verrs[0]))
		}
		return apperror.Validation("Invalid request body")
	}
	return nil
}

func describeFieldError(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// currentUserID reads the caller set by AuthMiddleware; routes without it are a wiring bug.
func currentUserID(c *gin.Context) (int64, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperror.Internal(errors.New("authenticated route without user in context")))
	}
	return id, ok
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
}

// idCollections are the path prefixes whose next segment is a numeric id.
var idCollections = []string{"/api/media/", "/api/ratings/"}

// methodNotAllowed answers 405, except for paths whose id segment is not numeric:
// those can never match a route and are not found for every method.
func methodNotAllowed(c *gin.Context) {
	path := c.Request.URL.Path
	for _, prefix := range idCollections {
		rest, ok := strings.CutPrefix(path, prefix)
		if !ok {
			continue
		}
		segment, _, _ := strings.Cut(rest, "/")
		if _, valid := middleware.ParseID(segment); !valid {
			notFound(c)
			return
		}
	}
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method " + strings.ToUpper(c.Request.Method) + " not allowed"})
}
