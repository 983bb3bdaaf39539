package parseErrors

import "github.com/gin-gonic/gin"

// ErrorResponse wraps err in the JSON body every handler answers with on failure
func ErrorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
