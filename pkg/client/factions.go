package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/pkg/transport"
)

// Factions covers the faction endpoints. All operations are read-only.
type Factions struct {
	session *transport.Session
}

func NewFactions(session *transport.Session) *Factions {
	return &Factions{session: session}
}

func (f *Factions) List(ctx context.Context, page, limit int) (*Outcome[models.Page[models.Faction]], error) {
	return fetchPage[models.Faction](ctx, f.session, call{
		op:       "list factions",
		method:   http.MethodGet,
		path:     "/factions",
		endpoint: "/factions",
		entity:   "Factions",
		success:  "Listed factions.",
	}, page, limit)
}

func (f *Factions) Get(ctx context.Context, factionSymbol string) (*Outcome[models.Faction], error) {
	const op = "fetch faction"
	if err := checkSymbols(op, "factionSymbol", factionSymbol); err != nil {
		return nil, err
	}
	return fetch[models.Faction](ctx, f.session, call{
		op:       op,
		method:   http.MethodGet,
		path:     "/factions/" + factionSymbol,
		endpoint: "/factions/{factionSymbol}",
		entity:   "Faction",
		success:  fmt.Sprintf("Fetched faction %s.", factionSymbol),
	})
}
