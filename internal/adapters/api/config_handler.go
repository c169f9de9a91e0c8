package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wristweather.app/pkg/errors"
)

// ConfigPageURLResponse carries the configuration page address
type ConfigPageURLResponse struct {
	URL string `json:"url"`
}

// ConfigClosedRequest carries the raw response of a closed configuration page.
// An empty response means the page was dismissed.
type ConfigClosedRequest struct {
	Response string `json:"response"`
}

// ConfigClosedResponse reports whether the new settings triggered a refresh
type ConfigClosedResponse struct {
	Refreshed bool `json:"refreshed"`
}

// redirectConfigPage handles GET /api/config requests
func (s *HTTPServerAdapter) redirectConfigPage(c *gin.Context) {
	c.Redirect(http.StatusFound, s.settingsUseCase.ConfigPageURL())
}

// getConfigPageURL handles GET /api/config/url requests
func (s *HTTPServerAdapter) getConfigPageURL(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigPageURLResponse{URL: s.settingsUseCase.ConfigPageURL()})
}

// postConfigClosed handles POST /api/config/closed requests
func (s *HTTPServerAdapter) postConfigClosed(c *gin.Context) {
	var req ConfigClosedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("invalid configuration result"))
		return
	}

	refreshed, err := s.settingsUseCase.ApplyConfigPageResult(c.Request.Context(), req.Response)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ConfigClosedResponse{Refreshed: refreshed})
}
