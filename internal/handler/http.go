package handler

import (
	"net/http"
	"strconv"

	"hmps-api/internal/logger"
	"hmps-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// errorBody renders an error message in the envelope a route group uses.
type errorBody func(msg string) gin.H

func errorKey(msg string) gin.H   { return gin.H{"error": msg} }
func messageKey(msg string) gin.H { return gin.H{"message": msg} }
func statusError(msg string) gin.H {
	return gin.H{"status": "error", "message": msg}
}

const msgInvalidBody = "Format data tidak valid."

func parseID(c *gin.Context, body errorBody) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, body("ID tidak valid."))
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any, body errorBody) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, body(msgInvalidBody))
		return false
	}
	return true
}

// internalError logs the cause and answers 500 with a generic message.
func internalError(c *gin.Context, body errorBody, msg string, err error) {
	_ = c.Error(err)
	logger.Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", middleware.GetRequestID(c),
		"err", err)
	c.JSON(http.StatusInternalServerError, body(msg))
}
