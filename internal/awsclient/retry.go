package awsclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws/retry"
)

// RetryConfig holds retry configuration
type RetryConfig struct {
	MaxRetries int
	MaxBackoff time.Duration
	// Backoff overrides the exponential jitter backoff.
	Backoff retry.BackoffDelayer
}

// DefaultRetryConfig returns default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		MaxBackoff: 20 * time.Second,
	}
}

// Retryer decides whether and when a failed attempt is retried
type Retryer struct {
	config  RetryConfig
	backoff retry.BackoffDelayer
}

// NewRetryer creates a new retryer
func NewRetryer(config RetryConfig) *Retryer {
	if config.MaxBackoff <= 0 {
		config.MaxBackoff = DefaultRetryConfig().MaxBackoff
	}
	backoff := config.Backoff
	if backoff == nil {
		backoff = retry.NewExponentialJitterBackoff(config.MaxBackoff)
	}
	return &Retryer{config: config, backoff: backoff}
}

// MaxAttempts returns the total number of attempts including the first one
func (r *Retryer) MaxAttempts() int {
	return r.config.MaxRetries + 1
}

// ShouldRetry reports whether another attempt may follow attempt (1-based)
func (r *Retryer) ShouldRetry(attempt int) bool {
	return attempt <= r.config.MaxRetries
}

// RetryDelay returns the delay before the attempt after attempt
func (r *Retryer) RetryDelay(attempt int, err error) time.Duration {
	delay, derr := r.backoff.BackoffDelay(attempt, err)
	if derr != nil || delay < 0 {
		return 0
	}
	return delay
}

// Sleep waits for d or until ctx is done
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsRetryableError reports whether a transport error is worth retrying.
// Cancellation of the caller's context never is.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// IsRetryableStatus reports whether an HTTP status code is retried
func IsRetryableStatus(statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	_, ok := retry.DefaultRetryableHTTPStatusCodes[statusCode]
	return ok
}

// IsThrottleError reports whether an AWS error code signals throttling
func IsThrottleError(code string) bool {
	_, ok := retry.DefaultThrottleErrorCodes[code]
	if ok {
		return true
	}
	_, ok = retry.DefaultRetryableErrorCodes[code]
	return ok
}
