package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONRejected carries the validation reason code alongside the message so a
// frontend can react per rule without parsing Spanish copy.
func JSONRejected(c *gin.Context, code int, reason, message string) {
	c.JSON(code, gin.H{"success": false, "reason": reason, "error": message})
}
