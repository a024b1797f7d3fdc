// Package awsclient is a small signed HTTP client for AWS JSON protocols.
package awsclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/google/uuid"

	"github.com/nandemo-ya/dms-go/internal/logging"
)

const (
	// DefaultRegion is used when no region is configured
	DefaultRegion = "us-east-1"

	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
)

// Config holds configuration for AWS client
type Config struct {
	// Credentials are static keys used when CredentialsProvider is nil
	Credentials Credentials

	// CredentialsProvider supplies credentials for every signature
	CredentialsProvider aws.CredentialsProvider

	// Region is the AWS region
	Region string

	// Endpoint is the API endpoint (optional, for the local mock server)
	Endpoint string

	// InsecureSkipVerify skips TLS certificate verification
	InsecureSkipVerify bool

	// HTTPClient is a custom HTTP client (optional)
	HTTPClient *http.Client

	// Timeout for requests
	Timeout time.Duration

	// MaxRetries is the maximum number of retries; negative disables retries
	MaxRetries int

	// MaxBackoff caps the delay between attempts
	MaxBackoff time.Duration

	// Backoff overrides the retry delay strategy
	Backoff retry.BackoffDelayer
}

// Client is a generic AWS API client
type Client struct {
	config     Config
	httpClient *http.Client
	retryer    *Retryer
	provider   aws.CredentialsProvider
	now        func() time.Time
}

// NewClient creates a new AWS client
func NewClient(config Config) *Client {
	if config.Region == "" {
		config.Region = DefaultRegion
	}

	switch {
	case config.MaxRetries == 0:
		config.MaxRetries = defaultMaxRetries
	case config.MaxRetries < 0:
		config.MaxRetries = 0
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: config.InsecureSkipVerify,
				},
			},
			Timeout: timeout,
		}
	}

	provider := config.CredentialsProvider
	if provider == nil && config.Credentials.IsSet() {
		provider = config.Credentials.Provider()
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		retryer: NewRetryer(RetryConfig{
			MaxRetries: config.MaxRetries,
			MaxBackoff: config.MaxBackoff,
			Backoff:    config.Backoff,
		}),
		provider: provider,
		now:      time.Now,
	}
}

// Region returns the region requests are signed for
func (c *Client) Region() string {
	return c.config.Region
}

// DoRequest performs an AWS API request with signing and retries. Each
// attempt is signed again. The request body is buffered so it can be
// replayed.
func (c *Client) DoRequest(ctx context.Context, req *http.Request, service string) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
	}

	var signer *Signer
	if c.provider != nil {
		signer = NewSigner(c.provider, SignerOptions{Service: service, Region: c.config.Region})
	}

	invocationID := uuid.NewString()
	maxAttempts := c.retryer.MaxAttempts()
	log := logging.FromContext(ctx).With("service", service, "invocation_id", invocationID)

	var lastErr error
	for attempt := 1; ; attempt++ {
		attemptReq := req.Clone(ctx)
		attemptReq.Body = io.NopCloser(bytes.NewReader(body))
		attemptReq.ContentLength = int64(len(body))
		attemptReq.Header.Set("amz-sdk-invocation-id", invocationID)
		attemptReq.Header.Set("amz-sdk-request", fmt.Sprintf("attempt=%d; max=%d", attempt, maxAttempts))

		if signer != nil {
			if err := signer.SignRequest(ctx, attemptReq, body, c.now()); err != nil {
				return nil, err
			}
		}

		resp, err := c.httpClient.Do(attemptReq)
		retryable := false
		switch {
		case err != nil:
			lastErr = err
			retryable = IsRetryableError(err) && ctx.Err() == nil
		case IsRetryableStatus(resp.StatusCode):
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			retryable = true
		case resp.StatusCode >= 400:
			code, peeked := peekErrorCode(resp)
			resp = peeked
			if IsThrottleError(code) {
				lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, code)
				retryable = true
			}
		}

		if !retryable || !c.retryer.ShouldRetry(attempt) {
			if err != nil {
				return nil, fmt.Errorf("request failed after %d attempts: %w", attempt, err)
			}
			return resp, nil
		}

		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		delay := c.retryer.RetryDelay(attempt, lastErr)
		log.Debug("retrying request", "attempt", attempt, "delay", delay, "error", lastErr)
		if err := Sleep(ctx, delay); err != nil {
			return nil, fmt.Errorf("request canceled after %d attempts: %w", attempt, err)
		}
	}
}

// peekErrorCode reads the AWS error code from a JSON error body and returns
// a response whose body can be read again.
func peekErrorCode(resp *http.Response) (string, *http.Response) {
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return "", resp
	}
	return ParseErrorCode(resp.Header, data), resp
}

// ParseErrorCode extracts the error code from the X-Amzn-ErrorType header
// or the __type / code members of a JSON error body. Namespaces before '#'
// and details after ':' are stripped.
func ParseErrorCode(header http.Header, body []byte) string {
	code := header.Get("X-Amzn-ErrorType")
	if code == "" && len(body) > 0 {
		var envelope struct {
			Type string `json:"__type"`
			Code string `json:"code"`
		}
		if json.Unmarshal(body, &envelope) == nil {
			code = envelope.Type
			if code == "" {
				code = envelope.Code
			}
		}
	}
	if i := strings.IndexByte(code, ':'); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndexByte(code, '#'); i >= 0 {
		code = code[i+1:]
	}
	return code
}

// BuildEndpoint builds the full endpoint URL for a service
func (c *Client) BuildEndpoint(service string) string {
	if c.config.Endpoint != "" {
		endpoint := c.config.Endpoint
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		return strings.TrimSuffix(endpoint, "/")
	}

	suffix := "amazonaws.com"
	if strings.HasPrefix(c.config.Region, "cn-") {
		suffix = "amazonaws.com.cn"
	}
	return fmt.Sprintf("https://%s.%s.%s", service, c.config.Region, suffix)
}
