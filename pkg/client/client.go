package client

import (
	"context"
	"net/http"

	"github.com/andrescamacho/spacetraders-sdk/internal/infrastructure/config"
	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/pkg/transport"
)

// Option configures the session shared by every endpoint group.
type Option = transport.Option

// Client is the entry point of the SDK. All groups share one authenticated
// session, so throttling and the circuit breaker apply across groups.
type Client struct {
	Agents    *Agents
	Contracts *Contracts
	Factions  *Factions
	Fleet     *Fleet
	Systems   *Systems

	session *transport.Session
}

// New creates a client for the API at baseURL, authenticated with token.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if token == "" {
		return nil, ErrMissingToken
	}

	session := transport.NewSession(baseURL, token, opts...)
	return &Client{
		Agents:    NewAgents(session),
		Contracts: NewContracts(session),
		Factions:  NewFactions(session),
		Fleet:     NewFleet(session),
		Systems:   NewSystems(session),
		session:   session,
	}, nil
}

// NewFromEnvironment is New with API_URL and TOKEN read from the environment
// (or a .env file). The arguments are only used for values the environment
// does not provide.
func NewFromEnvironment(baseURL, token string, opts ...Option) (*Client, error) {
	baseURL, token = config.ResolveCredentials(baseURL, token)
	return New(baseURL, token, opts...)
}

// Status reports the server status, version and leaderboards. The endpoint
// does not require the caller's agent to exist.
func (c *Client) Status(ctx context.Context) (*Outcome[models.Status], error) {
	return fetch[models.Status](ctx, c.session, call{
		op:       "fetch server status",
		method:   http.MethodGet,
		path:     "/",
		endpoint: "/",
		entity:   "Status",
		success:  "Fetched server status.",
	})
}

// Session exposes the underlying session, e.g. to inspect the circuit breaker.
func (c *Client) Session() *transport.Session {
	return c.session
}
