package middleware

import (
	"errors"
	"net/http"

	"aimlaw-web/internal/delivery/http/response"
	"aimlaw-web/pkg/apperror"
	"aimlaw-web/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached with c.Error as the JSON envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("Request failed",
					"request_id", c.GetString("RequestID"),
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			if len(appErr.Fields) > 0 {
				response.Error(c, appErr.Code, appErr.Message, appErr.Fields.ByField())
				return
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("Internal Server Error", "request_id", c.GetString("RequestID"), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
