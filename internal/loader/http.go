package loader

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HTTPClient abstracts HTTP operations for testing.
// This interface is satisfied by *http.Client and can be mocked in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultHTTPClient returns a configured HTTP client for production use.
func DefaultHTTPClient(timeout time.Duration) HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
	}
}

// loaderOptions holds optional dependencies for sources and stores.
type loaderOptions struct {
	httpClient HTTPClient
	logger     *zap.Logger
}

// Option configures optional loader dependencies.
type Option func(*loaderOptions)

// WithHTTPClient sets a custom HTTP client.
// Use this in tests to inject a mock HTTP client.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *loaderOptions) {
		o.httpClient = client
	}
}

// WithLogger sets the logger used to report load progress.
func WithLogger(logger *zap.Logger) Option {
	return func(o *loaderOptions) {
		o.logger = logger
	}
}

// defaultOptions returns options with production defaults.
func defaultOptions() *loaderOptions {
	return &loaderOptions{
		httpClient: DefaultHTTPClient(0),
		logger:     zap.NewNop(),
	}
}

// applyOptions applies option functions to the options struct.
func applyOptions(opts []Option) *loaderOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
