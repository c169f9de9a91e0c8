package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"wristweather.app/internal/ports"
	"wristweather.app/pkg/errors"
)

// HTTPFetcherAdapter implements JSONFetcher. Every fetch is a single attempt bounded by a timeout;
// each host is guarded by its own circuit breaker.
type HTTPFetcherAdapter struct {
	client      *http.Client
	timeout     time.Duration
	maxFailures uint32
	openTimeout time.Duration
	logger      ports.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// HTTPFetcherParams holds parameters for creating the fetcher
type HTTPFetcherParams struct {
	Timeout     time.Duration
	MaxFailures int
	OpenTimeout time.Duration
	Client      *http.Client
	Logger      ports.Logger
}

// NewHTTPFetcherAdapter creates a new JSON fetcher
func NewHTTPFetcherAdapter(params HTTPFetcherParams) *HTTPFetcherAdapter {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxFailures := params.MaxFailures
	if maxFailures <= 0 {
		maxFailures = 5
	}
	openTimeout := params.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &HTTPFetcherAdapter{
		client:      client,
		timeout:     timeout,
		maxFailures: uint32(maxFailures),
		openTimeout: openTimeout,
		logger:      params.Logger,
		breakers:    make(map[string]*gobreaker.CircuitBreaker),
	}
}

// FetchJSON retrieves rawURL and returns the body once it is known to be valid JSON
func (f *HTTPFetcherAdapter) FetchJSON(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return nil, errors.NewExternalAPIError("invalid request URL", err)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	result, err := f.breaker(parsed.Host).Execute(func() (interface{}, error) {
		return f.fetch(ctx, rawURL)
	})
	if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("circuit breaker open for %s", parsed.Host), err)
	}
	if err != nil {
		return nil, err
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, errors.NewExternalAPIError("unexpected result type from circuit breaker", nil)
	}
	return body, nil
}

func (f *HTTPFetcherAdapter) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build request", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && f.logger != nil {
			f.logger.Warn("Failed to close response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to read response body", err)
	}

	if !json.Valid(body) {
		return nil, errors.NewExternalAPIError("response is not valid JSON", nil)
	}

	return body, nil
}

func (f *HTTPFetcherAdapter) breaker(host string) *gobreaker.CircuitBreaker {
	f.mu.Lock()
	defer f.mu.Unlock()

	if cb, ok := f.breakers[host]; ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        host,
		MaxRequests: 1,
		Timeout:     f.openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= f.maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if f.logger != nil {
				f.logger.Warn("Circuit breaker state changed",
					ports.F("host", name),
					ports.F("from", from.String()),
					ports.F("to", to.String()))
			}
		},
	})
	f.breakers[host] = cb
	return cb
}

// BreakerStates reports the breaker state per host
func (f *HTTPFetcherAdapter) BreakerStates() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	states := make(map[string]string, len(f.breakers))
	for host, cb := range f.breakers {
		states[host] = cb.State().String()
	}
	return states
}
