package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// userIDParam parses the user_id path parameter, writing 400 on failure.
// Negative values parse fine and are left to miss as unknown users.
func userIDParam(c *gin.Context) (int64, bool) {
	return int64Param(c, "user_id")
}

// int64Param parses an integer path parameter, writing 400 on failure
func int64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return v, true
}

// internalError logs err with fields and answers 500 with msg
func internalError(c *gin.Context, msg string, err error, fields logrus.Fields) {
	fields["error"] = err.Error() // Error message
	logrus.WithFields(fields).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
