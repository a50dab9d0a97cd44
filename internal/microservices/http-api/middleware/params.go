package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// NumericParam rejects requests whose path parameter is not a positive decimal
// integer. It is mounted ahead of AuthMiddleware so a malformed id is a 404 for everyone.
func NumericParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := ParseID(c.Param(name)); !ok {
			abortWithError(c, http.StatusNotFound, "Resource not found")
			return
		}
		c.Next()
	}
}

// ParamID returns the numeric path parameter validated by NumericParam.
func ParamID(c *gin.Context, name string) int64 {
	id, _ := ParseID(c.Param(name))
	return id
}

// ParseID accepts only a decimal digit string that fits in an int64.
func ParseID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
