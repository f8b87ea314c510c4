package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/pkg/transport"
)

// Agents covers the agent endpoints. All operations are read-only.
type Agents struct {
	session *transport.Session
}

func NewAgents(session *transport.Session) *Agents {
	return &Agents{session: session}
}

// Mine fetches the caller's own agent, including its account ID.
func (a *Agents) Mine(ctx context.Context) (*Outcome[models.Agent], error) {
	return fetch[models.Agent](ctx, a.session, call{
		op:       "fetch own agent",
		method:   http.MethodGet,
		path:     "/my/agent",
		endpoint: "/my/agent",
		entity:   "Agent",
		success:  "Fetched agent.",
	})
}

func (a *Agents) List(ctx context.Context, page, limit int) (*Outcome[models.Page[models.Agent]], error) {
	return fetchPage[models.Agent](ctx, a.session, call{
		op:       "list agents",
		method:   http.MethodGet,
		path:     "/agents",
		endpoint: "/agents",
		entity:   "Agents",
		success:  "Listed agents.",
	}, page, limit)
}

// Get fetches a public agent by symbol.
func (a *Agents) Get(ctx context.Context, agentSymbol string) (*Outcome[models.Agent], error) {
	const op = "fetch agent"
	if err := checkSymbols(op, "agentSymbol", agentSymbol); err != nil {
		return nil, err
	}
	return fetch[models.Agent](ctx, a.session, call{
		op:       op,
		method:   http.MethodGet,
		path:     "/agents/" + agentSymbol,
		endpoint: "/agents/{agentSymbol}",
		entity:   "Agent",
		success:  fmt.Sprintf("Fetched agent %s.", agentSymbol),
	})
}
