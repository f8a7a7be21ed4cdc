package util

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

type leveledZap struct{}

// re-writes HTTP client ERROR to WARN level (because of retries)
func (l leveledZap) Error(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

func (l leveledZap) Warn(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

func (l leveledZap) Info(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

func (l leveledZap) Debug(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// NewHTTPClient returns a client that retries once on connection errors,
// 5xx, and 429 responses, respecting the Retry-After header. The returned
// client has the stdlib http.Client interface with retryablehttp logic
// internally.
func NewHTTPClient(timeout time.Duration) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 1
	retryClient.RetryWaitMin = 2 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = retryablehttp.LeveledLogger(leveledZap{})
	client := retryClient.StandardClient()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client.Timeout = timeout
	return client
}
