package awsclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedBackoff time.Duration

func (f fixedBackoff) BackoffDelay(int, error) (time.Duration, error) {
	return time.Duration(f), nil
}

func newTestClient(endpoint string, maxRetries int) *Client {
	return NewClient(Config{
		Endpoint:    endpoint,
		Credentials: Credentials{AccessKeyID: "AK", SecretAccessKey: "SK"},
		MaxRetries:  maxRetries,
		Backoff:     fixedBackoff(time.Millisecond),
	})
}

func postRequest(t *testing.T, url, body string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	return req
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	assert.Equal(t, "us-east-1", c.Region())
	assert.Equal(t, 4, c.retryer.MaxAttempts())
	assert.Equal(t, 30*time.Second, c.httpClient.Timeout)
	assert.Nil(t, c.provider)

	noRetry := NewClient(Config{MaxRetries: -1})
	assert.Equal(t, 1, noRetry.retryer.MaxAttempts())
}

func TestBuildEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected string
	}{
		{"default region", Config{}, "https://dms.us-east-1.amazonaws.com"},
		{"explicit region", Config{Region: "eu-central-1"}, "https://dms.eu-central-1.amazonaws.com"},
		{"china partition", Config{Region: "cn-north-1"}, "https://dms.cn-north-1.amazonaws.com.cn"},
		{"custom endpoint", Config{Endpoint: "http://localhost:4566/"}, "http://localhost:4566"},
		{"endpoint without scheme", Config{Endpoint: "dms.internal"}, "https://dms.internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewClient(tt.config).BuildEndpoint("dms"))
		})
	}
}

func TestDoRequestSignsAndSetsInvocationHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"x":1}`, string(body))
		assert.Contains(t, r.Header.Get("Authorization"), "/us-east-1/dms/aws4_request")
		assert.NotEmpty(t, r.Header.Get("amz-sdk-invocation-id"))
		assert.Equal(t, "attempt=1; max=4", r.Header.Get("amz-sdk-request"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := newTestClient(server.URL, 0)
	resp, err := c.DoRequest(context.Background(), postRequest(t, server.URL, `{"x":1}`), "dms")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDoRequestUnsignedWithoutCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
	}))
	defer server.Close()

	c := NewClient(Config{Endpoint: server.URL})
	resp, err := c.DoRequest(context.Background(), postRequest(t, server.URL, "{}"), "dms")
	require.NoError(t, err)
	resp.Body.Close()
}

func TestDoRequestRetriesServerErrors(t *testing.T) {
	var (
		calls         int32
		mu            sync.Mutex
		invocationIDs []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		mu.Lock()
		invocationIDs = append(invocationIDs, r.Header.Get("amz-sdk-invocation-id"))
		mu.Unlock()
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "payload", string(body), "body is replayed on every attempt")
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		assert.Equal(t, "attempt=3; max=4", r.Header.Get("amz-sdk-request"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := newTestClient(server.URL, 3)
	resp, err := c.DoRequest(context.Background(), postRequest(t, server.URL, "payload"), "dms")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, invocationIDs, 3)
	assert.Equal(t, invocationIDs[0], invocationIDs[2])
}

func TestDoRequestRetriesThrottling(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"__type":"ThrottlingException","message":"Rate exceeded"}`)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL, 2).DoRequest(context.Background(), postRequest(t, server.URL, "{}"), "dms")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDoRequestDoesNotRetryClientFaults(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"__type":"ResourceNotFoundFault","message":"missing"}`)
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL, 3).DoRequest(context.Background(), postRequest(t, server.URL, "{}"), "dms")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ResourceNotFoundFault", "body stays readable after peeking")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDoRequestGivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL, 2).DoRequest(context.Background(), postRequest(t, server.URL, "{}"), "dms")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDoRequestHonorsContextDuringBackoff(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewClient(Config{Endpoint: server.URL, MaxRetries: 5, Backoff: fixedBackoff(time.Hour)})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.DoRequest(ctx, postRequest(t, server.URL, "{}"), "dms")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestParseErrorCode(t *testing.T) {
	tests := []struct {
		name   string
		header http.Header
		body   string
		want   string
	}{
		{"namespaced type", http.Header{}, `{"__type":"com.amazonaws.dms#ResourceNotFoundFault"}`, "ResourceNotFoundFault"},
		{"plain type", http.Header{}, `{"__type":"InvalidResourceStateFault"}`, "InvalidResourceStateFault"},
		{"code member", http.Header{}, `{"code":"AccessDeniedFault"}`, "AccessDeniedFault"},
		{"header wins", http.Header{"X-Amzn-Errortype": []string{"ThrottlingException:http://internal"}}, `{"__type":"Other"}`, "ThrottlingException"},
		{"not json", http.Header{}, `<html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseErrorCode(tt.header, []byte(tt.body)))
		})
	}
}

func TestRetryClassification(t *testing.T) {
	assert.True(t, IsRetryableStatus(http.StatusTooManyRequests))
	assert.True(t, IsRetryableStatus(http.StatusBadGateway))
	assert.False(t, IsRetryableStatus(http.StatusBadRequest))

	assert.True(t, IsThrottleError("ThrottlingException"))
	assert.True(t, IsThrottleError("RequestTimeout"))
	assert.False(t, IsThrottleError("ResourceNotFoundFault"))

	assert.False(t, IsRetryableError(nil))
	assert.False(t, IsRetryableError(context.Canceled))
	assert.True(t, IsRetryableError(io.ErrUnexpectedEOF))
}

func TestRetryer(t *testing.T) {
	r := NewRetryer(RetryConfig{MaxRetries: 2, MaxBackoff: time.Second})
	assert.Equal(t, 3, r.MaxAttempts())
	assert.True(t, r.ShouldRetry(2))
	assert.False(t, r.ShouldRetry(3))

	for attempt := 1; attempt <= 5; attempt++ {
		d := r.RetryDelay(attempt, nil)
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.LessOrEqual(t, d, time.Second)
	}
}

func TestSleep(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
}
