package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
	"github.com/andrescamacho/spacetraders-sdk/pkg/transport"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// call describes one endpoint operation.
type call struct {
	op       string // verb phrase used in wrapped errors, e.g. "fetch agent"
	method   string
	path     string
	endpoint string // path template for metrics
	query    url.Values
	body     interface{}
	entity   string // subject of the not-found message
	success  string
}

// execute sends c and turns the response into an Outcome. HTTP error statuses
// become failed outcomes; transport and schema failures are returned as errors.
func execute[T any](ctx context.Context, s *transport.Session, c call, decode func([]byte) (*T, error)) (*Outcome[T], error) {
	resp, err := s.Do(ctx, transport.Request{
		Method:   c.method,
		Path:     c.path,
		Endpoint: c.endpoint,
		Query:    c.query,
		Body:     c.body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", c.op, err)
	}

	if Classify(resp.StatusCode) != KindOK {
		return failed[T](resp.StatusCode, c.entity, resp.Body), nil
	}

	value, err := decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", c.op, err)
	}
	return succeeded(resp.StatusCode, c.success, value), nil
}

func fetch[T any](ctx context.Context, s *transport.Session, c call) (*Outcome[T], error) {
	return execute(ctx, s, c, decodeData[T])
}

func fetchPage[T any](ctx context.Context, s *transport.Session, c call, page, limit int) (*Outcome[models.Page[T]], error) {
	if err := checkParams(c.op, models.Pagination{Page: page, Limit: limit}); err != nil {
		return nil, err
	}
	if c.query == nil {
		c.query = url.Values{}
	}
	c.query.Set("page", strconv.Itoa(page))
	c.query.Set("limit", strconv.Itoa(limit))
	return execute(ctx, s, c, decodePage[T])
}

// decodeData unwraps {"data": ...} and validates the payload.
func decodeData[T any](body []byte) (*T, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	value := new(T)
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &models.DecodeError{Type: fmt.Sprintf("%T", *value), Err: err}
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, &models.DecodeError{Type: fmt.Sprintf("%T", *value), Err: errMissingData}
	}
	if err := models.Decode(envelope.Data, value); err != nil {
		return nil, err
	}
	return value, nil
}

// decodePage validates a {"data": [...], "meta": {...}} list.
func decodePage[T any](body []byte) (*models.Page[T], error) {
	page := new(models.Page[T])
	if err := models.Decode(body, page); err != nil {
		return nil, err
	}
	return page, nil
}
