package handler

import (
	"net/http"

	errs "github.com/lendmark/demo-credit/internal/domain/error"
	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
	"github.com/lendmark/demo-credit/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// writeError maps a use case error onto the wire. Client faults keep
// their message; anything unclassified is masked as a 500 and logged.
func writeError(c *gin.Context, logger coreport.Logger, err error) {
	status := errs.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
	}
	c.JSON(status, dto.ErrorResponse{
		Status:  status,
		Message: errs.MessageOf(err),
	})
}

// writeBindError reports a malformed or invalid request body
func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Status:  http.StatusBadRequest,
		Message: "Invalid request: " + err.Error(),
	})
}
