package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wristweather.app/internal/core/weather"
	"wristweather.app/internal/ports"
)

// StatusResponse describes the relay state. The API credential is never included.
type StatusResponse struct {
	Session   weather.Session        `json:"session"`
	Settings  ports.AppMessage       `json:"settings"`
	Providers map[string]interface{} `json:"providers"`
}

// HealthResponse aggregates component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getStatus handles GET /api/status requests
func (s *HTTPServerAdapter) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Session:   s.weatherUseCase.Status(),
		Settings:  s.settingsUseCase.Current().EchoMessage(),
		Providers: s.weatherUseCase.GetProviderInfo(),
	})
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.health.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: components}
	for _, component := range components {
		if component.Status != "healthy" {
			response.Status = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}
	}

	c.JSON(http.StatusOK, response)
}
