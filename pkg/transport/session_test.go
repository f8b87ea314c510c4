package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-sdk/pkg/transport"
)

func identity(d time.Duration) time.Duration { return d }

type recordingThrottle struct {
	calls int32
	err   error
}

func (r *recordingThrottle) Wait(ctx context.Context) error {
	atomic.AddInt32(&r.calls, 1)
	return r.err
}

type fakeRecorder struct {
	requests []int
	retries  []string
}

func (f *fakeRecorder) RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	f.requests = append(f.requests, statusCode)
}

func (f *fakeRecorder) RecordRetry(method, endpoint, reason string) {
	f.retries = append(f.retries, reason)
}

func (f *fakeRecorder) RecordThrottleWait(method, endpoint string, wait time.Duration) {}

func TestSession_Do_SetsHeadersAndBody(t *testing.T) {
	// Arrange
	var gotAuth, gotAccept, gotContentType, gotMethod, gotPath, gotQuery string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	session := transport.NewSession(server.URL+"/", "secret-token")

	// Act
	resp, err := session.Do(context.Background(), transport.Request{
		Method: http.MethodPost,
		Path:   "/my/ships/SHIP-1/navigate",
		Query:  url.Values{"page": {"2"}},
		Body:   map[string]string{"waypointSymbol": "X1-A1-B2"},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"data":{}}`, string(resp.Body))
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/my/ships/SHIP-1/navigate", gotPath)
	assert.Equal(t, "page=2", gotQuery)
	assert.Equal(t, "X1-A1-B2", gotBody["waypointSymbol"])
}

func TestSession_Do_ReturnsErrorStatusWithoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"Agent not found","code":404}}`))
	}))
	defer server.Close()

	session := transport.NewSession(server.URL, "t")

	resp, err := session.Do(context.Background(), transport.Request{Method: http.MethodGet, Path: "/agents/NOPE"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSession_Do_SendsExactlyOnceWithoutRetryPolicy(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	session := transport.NewSession(server.URL, "t")

	resp, err := session.Do(context.Background(), transport.Request{Method: http.MethodGet, Path: "/"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestSession_Do_RetriesRateLimitHonouringRetryAfter(t *testing.T) {
	// Arrange
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	clock := transport.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	recorder := &fakeRecorder{}
	session := transport.NewSession(server.URL, "t",
		transport.WithClock(clock),
		transport.WithRecorder(recorder),
		transport.WithRetryPolicy(transport.ExponentialBackoff{MaxRetries: 5, Base: time.Second, Jitter: identity}),
	)

	// Act
	resp, err := session.Do(context.Background(), transport.Request{Method: http.MethodGet, Path: "/my/agent"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, clock.Sleeps())
	assert.Equal(t, []string{"rate_limited", "rate_limited"}, recorder.retries)
	assert.Equal(t, []int{429, 429, 200}, recorder.requests)
}

func TestSession_Do_ExhaustedRetriesReturnLastResponse(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	clock := transport.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	session := transport.NewSession(server.URL, "t",
		transport.WithClock(clock),
		transport.WithRetryPolicy(transport.ExponentialBackoff{MaxRetries: 2, Base: time.Second, Jitter: identity}),
	)

	resp, err := session.Do(context.Background(), transport.Request{Method: http.MethodGet, Path: "/"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, clock.Sleeps())
}

func TestSession_Do_NetworkFailureIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	session := transport.NewSession(baseURL, "t")

	resp, err := session.Do(context.Background(), transport.Request{Method: http.MethodGet, Path: "/my/agent"})

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, transport.IsTransportError(err))
	var terr *transport.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "send", terr.Op)
}

func TestSession_Do_ThrottleIsConsultedAndCanCancel(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	throttle := &recordingThrottle{}
	session := transport.NewSession(server.URL, "t", transport.WithThrottle(throttle))
	_, err := session.Do(context.Background(), transport.Request{Method: http.MethodGet, Path: "/"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&throttle.calls))

	blocked := &recordingThrottle{err: context.DeadlineExceeded}
	session = transport.NewSession(server.URL, "t", transport.WithThrottle(blocked))
	_, err = session.Do(context.Background(), transport.Request{Method: http.MethodGet, Path: "/"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestSession_Do_OpenCircuitFailsFast(t *testing.T) {
	// Arrange
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	clock := transport.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	breaker := transport.NewCircuitBreaker(2, time.Minute, clock)
	session := transport.NewSession(server.URL, "t", transport.WithCircuitBreaker(breaker))
	req := transport.Request{Method: http.MethodGet, Path: "/"}

	// Act
	for i := 0; i < 2; i++ {
		resp, err := session.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	}
	_, err := session.Do(context.Background(), req)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, transport.ErrCircuitOpen))
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	assert.Equal(t, transport.CircuitOpen, breaker.State())
}

func TestSession_Do_CancelledContextInterruptsBackoff(t *testing.T) {
	// Arrange
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Retry-After", "3600")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	session := transport.NewSession(server.URL, "t",
		transport.WithRetryPolicy(transport.ExponentialBackoff{MaxRetries: 3, Base: time.Second, Jitter: identity}),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// Act
	started := time.Now()
	resp, err := session.Do(ctx, transport.Request{Method: http.MethodGet, Path: "/my/agent"})

	// Assert
	assert.Less(t, time.Since(started), 5*time.Second)
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	var terr *transport.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "backoff", terr.Op)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestSession_WithTimeout_LeavesCallerClientUntouched(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	caller := &http.Client{Timeout: time.Minute}
	session := transport.NewSession(server.URL, "t",
		transport.WithHTTPClient(caller),
		transport.WithTimeout(50*time.Millisecond),
	)

	// Act
	_, err := session.Do(context.Background(), transport.Request{Method: http.MethodGet, Path: "/"})

	// Assert
	assert.Equal(t, time.Minute, caller.Timeout)
	require.Error(t, err)
	assert.True(t, transport.IsTransportError(err))
}
