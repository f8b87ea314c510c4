package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/spacetraders-sdk/pkg/logging"
)

const (
	// DefaultBaseURL is the public SpaceTraders v2 API
	DefaultBaseURL = "https://api.spacetraders.io/v2"
	DefaultTimeout = 30 * time.Second
)

// errServerStatus marks a 5xx response as a breaker failure without
// turning it into a transport error for the caller.
var errServerStatus = errors.New("server error status")

// Request describes one API call relative to the session's base URL.
type Request struct {
	Method   string
	Path     string // escaped path, e.g. "/my/ships/SHIP-1/orbit"
	Endpoint string // path template used for metrics; defaults to Path
	Query    url.Values
	Body     interface{} // marshalled as JSON when non-nil
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RequestID  string
}

// Session is the authenticated HTTP session shared by all endpoint groups.
// It attaches the JSON and bearer headers to every request and applies the
// configured throttle, retry policy and circuit breaker. A Session is safe
// for concurrent use.
type Session struct {
	httpClient *http.Client
	baseURL    string
	token      string
	throttle   Throttle
	retry      RetryPolicy
	breaker    *CircuitBreaker
	recorder   Recorder
	logger     logging.Logger
	clock      Clock
}

// Option configures a Session
type Option func(*Session)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(s *Session) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithTimeout sets the per-attempt timeout. The HTTP client is copied first,
// so a client passed to WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		c := *s.httpClient
		c.Timeout = d
		s.httpClient = &c
	}
}

// WithThrottle gates every attempt through t
func WithThrottle(t Throttle) Option {
	return func(s *Session) {
		if t != nil {
			s.throttle = t
		}
	}
}

// WithRetryPolicy enables retries. Without it every request is sent once.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(s *Session) {
		if p != nil {
			s.retry = p
		}
	}
}

// WithCircuitBreaker fails fast while the API keeps failing
func WithCircuitBreaker(cb *CircuitBreaker) Option {
	return func(s *Session) {
		s.breaker = cb
	}
}

// WithRecorder reports every exchange to r
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithLogger sets the logger used when the request context carries none
func WithLogger(l logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock injects the clock used for backoff waits and durations
func WithClock(c Clock) Option {
	return func(s *Session) {
		if c != nil {
			s.clock = c
		}
	}
}

// NewSession creates a session for baseURL authenticated with token.
func NewSession(baseURL, token string, opts ...Option) *Session {
	s := &Session{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		throttle:   Unthrottled{},
		retry:      NoRetry{},
		recorder:   noopRecorder{},
		logger:     logging.NoOp(),
		clock:      RealClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BaseURL returns the API root the session sends requests to
func (s *Session) BaseURL() string {
	return s.baseURL
}

// Do sends req and returns the response whatever its status. The error is
// non-nil only when no response could be obtained; it is then a *Error,
// except for a request body that cannot be encoded.
func (s *Session) Do(ctx context.Context, req Request) (*Response, error) {
	if s.breaker == nil {
		return s.send(ctx, req)
	}

	var resp *Response
	err := s.breaker.Call(func() error {
		var err error
		resp, err = s.send(ctx, req)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 500 {
			return errServerStatus
		}
		return nil
	})

	switch {
	case errors.Is(err, ErrCircuitOpen):
		return nil, &Error{Op: "circuit", Method: req.Method, URL: s.url(req), Err: err}
	case errors.Is(err, errServerStatus):
		return resp, nil
	case err != nil:
		return nil, err
	}
	return resp, nil
}

func (s *Session) send(ctx context.Context, req Request) (*Response, error) {
	logger := logging.FromContext(ctx, s.logger)
	target := s.url(req)
	endpoint := req.Endpoint
	if endpoint == "" {
		endpoint = req.Path
	}

	var payload []byte
	if req.Body != nil {
		var err error
		payload, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	requestID := uuid.NewString()

	for attempt := 0; ; attempt++ {
		waitStart := s.clock.Now()
		if err := s.throttle.Wait(ctx); err != nil {
			return nil, &Error{Op: "throttle", Method: req.Method, URL: target, Err: err}
		}
		s.recorder.RecordThrottleWait(req.Method, endpoint, s.clock.Now().Sub(waitStart))

		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		httpReq.Header.Set("Accept", "application/json")
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+s.token)

		start := s.clock.Now()
		httpResp, err := s.httpClient.Do(httpReq)
		if err != nil {
			terr := &Error{Op: "send", Method: req.Method, URL: target, Err: err}
			logger.Log(logging.LevelWarn, "request failed", map[string]interface{}{
				"request_id": requestID,
				"method":     req.Method,
				"endpoint":   endpoint,
				"attempt":    attempt + 1,
				"error":      err.Error(),
			})
			retry, werr := s.backoff(ctx, req.Method, endpoint, attempt, nil, err)
			if werr != nil {
				return nil, &Error{Op: "backoff", Method: req.Method, URL: target, Err: werr}
			}
			if !retry {
				return nil, terr
			}
			continue
		}

		respBody, err := io.ReadAll(httpResp.Body)
		httpResp.Body.Close()
		if err != nil {
			return nil, &Error{Op: "read", Method: req.Method, URL: target, Err: err}
		}

		duration := s.clock.Now().Sub(start)
		s.recorder.RecordRequest(req.Method, endpoint, httpResp.StatusCode, duration)
		logger.Log(logging.LevelDebug, "request completed", map[string]interface{}{
			"request_id":  requestID,
			"method":      req.Method,
			"endpoint":    endpoint,
			"status":      httpResp.StatusCode,
			"attempt":     attempt + 1,
			"duration_ms": duration.Milliseconds(),
		})

		resp := &Response{
			StatusCode: httpResp.StatusCode,
			Header:     httpResp.Header,
			Body:       respBody,
			RequestID:  requestID,
		}
		retry, werr := s.backoff(ctx, req.Method, endpoint, attempt, resp, nil)
		if werr != nil {
			return nil, &Error{Op: "backoff", Method: req.Method, URL: target, Err: werr}
		}
		if !retry {
			return resp, nil
		}
	}
}

// backoff asks the retry policy about a finished attempt and waits when it
// says to retry. It returns false when the caller should stop, and the
// context error when ctx ends during the wait.
func (s *Session) backoff(ctx context.Context, method, endpoint string, attempt int, resp *Response, err error) (bool, error) {
	delay, reason, retry := s.retry.Backoff(attempt, resp, err)
	if !retry || ctx.Err() != nil {
		return false, nil
	}
	s.recorder.RecordRetry(method, endpoint, reason)
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-s.clock.After(delay):
		return true, nil
	}
}

func (s *Session) url(req Request) string {
	u := s.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	return u
}
