package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/pkg/transport"
)

// Contracts covers the caller's contracts. Accept, Deliver, Fulfill and
// Negotiate change game state.
type Contracts struct {
	session *transport.Session
}

func NewContracts(session *transport.Session) *Contracts {
	return &Contracts{session: session}
}

func (c *Contracts) List(ctx context.Context, page, limit int) (*Outcome[models.Page[models.Contract]], error) {
	return fetchPage[models.Contract](ctx, c.session, call{
		op:       "list contracts",
		method:   http.MethodGet,
		path:     "/my/contracts",
		endpoint: "/my/contracts",
		entity:   "Contracts",
		success:  "Listed contracts.",
	}, page, limit)
}

func (c *Contracts) Get(ctx context.Context, contractID string) (*Outcome[models.Contract], error) {
	const op = "fetch contract"
	if err := checkSymbols(op, "contractID", contractID); err != nil {
		return nil, err
	}
	return fetch[models.Contract](ctx, c.session, call{
		op:       op,
		method:   http.MethodGet,
		path:     "/my/contracts/" + contractID,
		endpoint: "/my/contracts/{contractID}",
		entity:   "Contract",
		success:  fmt.Sprintf("Fetched contract %s.", contractID),
	})
}

// Accept accepts a contract and collects its up-front payment.
func (c *Contracts) Accept(ctx context.Context, contractID string) (*Outcome[models.ContractAgent], error) {
	const op = "accept contract"
	if err := checkSymbols(op, "contractID", contractID); err != nil {
		return nil, err
	}
	return fetch[models.ContractAgent](ctx, c.session, call{
		op:       op,
		method:   http.MethodPost,
		path:     "/my/contracts/" + contractID + "/accept",
		endpoint: "/my/contracts/{contractID}/accept",
		entity:   "Contract",
		success:  fmt.Sprintf("Accepted contract %s.", contractID),
	})
}

// Deliver hands cargo from a docked ship over to a contract.
func (c *Contracts) Deliver(ctx context.Context, contractID string, req models.DeliverContractRequest) (*Outcome[models.ContractDelivery], error) {
	const op = "deliver contract cargo"
	if err := checkSymbols(op, "contractID", contractID); err != nil {
		return nil, err
	}
	if err := checkParams(op, req); err != nil {
		return nil, err
	}
	return fetch[models.ContractDelivery](ctx, c.session, call{
		op:       op,
		method:   http.MethodPost,
		path:     "/my/contracts/" + contractID + "/deliver",
		endpoint: "/my/contracts/{contractID}/deliver",
		body:     req,
		entity:   "Contract",
		success:  fmt.Sprintf("Delivered %d %s to contract %s.", req.Units, req.TradeSymbol, contractID),
	})
}

// Fulfill completes a contract whose deliveries are all met. It posts to
// /my/contracts/{id}/fulfill, the path the live API serves, not the
// misspelled /fullfill some older clients use.
func (c *Contracts) Fulfill(ctx context.Context, contractID string) (*Outcome[models.ContractAgent], error) {
	const op = "fulfill contract"
	if err := checkSymbols(op, "contractID", contractID); err != nil {
		return nil, err
	}
	return fetch[models.ContractAgent](ctx, c.session, call{
		op:       op,
		method:   http.MethodPost,
		path:     "/my/contracts/" + contractID + "/fulfill",
		endpoint: "/my/contracts/{contractID}/fulfill",
		entity:   "Contract",
		success:  fmt.Sprintf("Fulfilled contract %s.", contractID),
	})
}

// Negotiate asks the faction at the ship's waypoint for a new contract.
// The ship must be docked.
func (c *Contracts) Negotiate(ctx context.Context, shipSymbol string) (*Outcome[models.ContractNegotiation], error) {
	const op = "negotiate contract"
	if err := checkSymbols(op, "shipSymbol", shipSymbol); err != nil {
		return nil, err
	}
	return fetch[models.ContractNegotiation](ctx, c.session, call{
		op:       op,
		method:   http.MethodPost,
		path:     "/my/ships/" + shipSymbol + "/negotiate/contract",
		endpoint: "/my/ships/{shipSymbol}/negotiate/contract",
		entity:   "Ship",
		success:  fmt.Sprintf("Negotiated a new contract with %s.", shipSymbol),
	})
}
