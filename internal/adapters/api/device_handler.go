package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// LocationRequest is a position fix posted by the device
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	// Timestamp in unix milliseconds, optional
	Timestamp int64 `json:"timestamp" binding:"min=0"`
}

// UpdateResponse reports whether an update request started a cycle
type UpdateResponse struct {
	Accepted bool `json:"accepted"`
}

// postAppMessage handles POST /api/appmessage requests
func (s *HTTPServerAdapter) postAppMessage(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		s.handleError(c, errors.NewValidationError("app message must be a JSON object"))
		return
	}

	if err := s.settingsUseCase.ApplyDeviceMessage(c.Request.Context(), raw); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// postLocation handles POST /api/location requests
func (s *HTTPServerAdapter) postLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("invalid location: "+err.Error()))
		return
	}

	coords := ports.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if req.Timestamp > 0 {
		coords.Timestamp = time.UnixMilli(req.Timestamp)
	}
	s.locations.Report(coords)

	c.Status(http.StatusNoContent)
}

// postUpdate handles POST /api/update requests. The cycle runs before the response is written.
func (s *HTTPServerAdapter) postUpdate(c *gin.Context) {
	accepted := s.weatherUseCase.RequestUpdate(c.Request.Context())

	status := http.StatusOK
	if !accepted {
		status = http.StatusTooManyRequests
	}
	c.JSON(status, UpdateResponse{Accepted: accepted})
}
