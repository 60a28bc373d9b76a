package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/NomadCrew/feedback-api/errors"
	"github.com/NomadCrew/feedback-api/logger"
	"github.com/NomadCrew/feedback-api/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func setupErrorRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", func(c *gin.Context) {
		if err != nil {
			_ = c.Error(err)
		}
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   types.ErrorResponse
	}{
		{
			name:           "not found",
			err:            apperrors.NotFound("Feedback", "abc"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   types.ErrorResponse{Status: "fail", Message: "Feedback with ID: abc not found"},
		},
		{
			name:           "conflict",
			err:            apperrors.NewConflictError("This feedback already exists", "23505"),
			expectedStatus: http.StatusConflict,
			expectedBody:   types.ErrorResponse{Status: "fail", Message: "This feedback already exists"},
		},
		{
			name:           "validation includes detail",
			err:            apperrors.ValidationFailed("Invalid feedback ID", "invalid UUID length: 3"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   types.ErrorResponse{Status: "fail", Message: "Invalid feedback ID: invalid UUID length: 3"},
		},
		{
			name:           "database error is opaque",
			err:            apperrors.NewDatabaseError(errors.New("pq: password authentication failed")),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   types.ErrorResponse{Status: "error", Message: "Database operation failed"},
		},
		{
			name:           "unknown error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   types.ErrorResponse{Status: "error", Message: "Internal Server Error"},
		},
		{
			name:           "rate limited",
			err:            apperrors.RateLimitExceeded("Too many requests. Please try again later.", 30),
			expectedStatus: http.StatusTooManyRequests,
			expectedBody:   types.ErrorResponse{Status: "fail", Message: "Too many requests. Please try again later."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			setupErrorRouter(tt.err).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body types.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestErrorHandler_NoError(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	setupErrorRouter(nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestErrorHandler_ResponseAlreadyWritten(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"status": "success"})
		_ = c.Error(errors.New("late failure"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
}
