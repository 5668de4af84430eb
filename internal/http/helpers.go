package http

import (
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/security"
)

// respondInternalError logs the error and sends a 500 response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.String(http.StatusInternalServerError, "internal server error")
}

// parseIDParam extracts an unsigned integer ID from URL parameters.
// Callers decide how to respond to a malformed value.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// csrfField returns the hidden form field carrying the CSRF token,
// ready for template interpolation.
func csrfField(c *gin.Context) template.HTML {
	return template.HTML(security.CSRFTokenField(c))
}
