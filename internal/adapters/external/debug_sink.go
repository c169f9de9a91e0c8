package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wristweather.app/internal/ports"
)

// DebugSinkAdapter posts outbound messages to an external log endpoint as form field data=<json>.
// Failures are logged and swallowed.
type DebugSinkAdapter struct {
	url     string
	enabled bool
	client  *http.Client
	logger  ports.Logger
}

// DebugSinkParams holds parameters for creating the debug sink
type DebugSinkParams struct {
	URL     string
	Enabled bool
	Timeout time.Duration
	Logger  ports.Logger
}

// NewDebugSinkAdapter creates a new debug sink
func NewDebugSinkAdapter(params DebugSinkParams) *DebugSinkAdapter {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &DebugSinkAdapter{
		url:     params.URL,
		enabled: params.Enabled && params.URL != "",
		client:  &http.Client{Timeout: timeout},
		logger:  params.Logger,
	}
}

// Post sends payload to the sink when enabled
func (s *DebugSinkAdapter) Post(ctx context.Context, payload ports.AppMessage) {
	if !s.enabled {
		return
	}

	if err := s.post(ctx, payload); err != nil {
		s.logger.Warn("Debug sink post failed", ports.F("url", s.url), ports.F("error", err))
	}
}

func (s *DebugSinkAdapter) post(ctx context.Context, payload ports.AppMessage) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	form := url.Values{"data": {string(data)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Warn("Failed to close debug sink response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
