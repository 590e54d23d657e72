// Package response holds the JSON envelope every handler writes. Payloads
// ride under "data" on success; failures carry a machine code plus a
// human-readable message under "error".
package response

import "github.com/gin-gonic/gin"

// Success writes {"success": true, "data": <data>}.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes {"success": false, "error": {"code", "message"}}.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails adds a structured "details" field to the error body,
// used for per-field validation maps and missing-specialty listings.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
