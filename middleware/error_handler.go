package middleware

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "github.com/NomadCrew/feedback-api/errors"
	"github.com/NomadCrew/feedback-api/logger"
	"github.com/NomadCrew/feedback-api/types"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal Server Error"

// ErrorHandler renders the last error attached to the context as
// {status, message}. Client errors use status "fail", server errors "error".
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		err := last.Err

		var appError *apperrors.AppError
		if errors.As(err, &appError) {
			statusCode := appError.GetHTTPStatus()
			logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))

			message := appError.Message
			if appError.Type == apperrors.ValidationError && appError.Detail != "" {
				message = fmt.Sprintf("%s: %s", appError.Message, appError.Detail)
			}

			c.JSON(statusCode, errorBody(statusCode, message))
			return
		}

		// Handle Gin binding errors
		if last.Type == gin.ErrorTypeBind {
			logger.LogHTTPError(c, err, http.StatusBadRequest, "Request binding error")
			c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "Failed to bind request: "+err.Error()))
			return
		}

		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Unexpected server error")

		message := internalErrorMessage
		if gin.IsDebugging() {
			message = fmt.Sprintf("%s: %v", internalErrorMessage, err)
		}
		c.JSON(http.StatusInternalServerError, errorBody(http.StatusInternalServerError, message))
	}
}

func errorBody(statusCode int, message string) types.ErrorResponse {
	status := types.StatusError
	if statusCode >= 400 && statusCode < 500 {
		status = types.StatusFail
	}
	return types.ErrorResponse{Status: status, Message: message}
}
