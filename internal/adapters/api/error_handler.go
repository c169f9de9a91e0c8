package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"wristweather.app/internal/ports"
	errorspkg "wristweather.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError maps application errors to HTTP status codes
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		s.logError(c, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	var statusCode int
	var message string

	switch appErr.Type {
	case errorspkg.ValidationError, errorspkg.ConfigParseError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.GeolocationError:
		statusCode = http.StatusServiceUnavailable
		message = "Location unavailable"
	case errorspkg.ExternalAPIError:
		statusCode = http.StatusServiceUnavailable
		message = "External service unavailable"
	case errorspkg.ParseError:
		statusCode = http.StatusBadGateway
		message = "Unexpected response from weather provider"
	case errorspkg.DeliveryError:
		statusCode = http.StatusServiceUnavailable
		message = "Device unavailable"
	default:
		s.logError(c, err)
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

func (s *HTTPServerAdapter) logError(c *gin.Context, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Error("Request failed", ports.F("path", c.Request.URL.Path), ports.F("error", err))
}
