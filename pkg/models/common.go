package models

import (
	"encoding/json"
	"fmt"
)

// Meta is the pagination block returned with every list.
type Meta struct {
	Total int `json:"total" validate:"gte=0"`
	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=20"`
}

// Page is a list envelope: {"data": [...], "meta": {...}}.
type Page[T any] struct {
	Data []T  `json:"data" validate:"dive"`
	Meta Meta `json:"meta"`
}

// Check enforces that a page never holds more items than its limit.
func (p *Page[T]) Check() error {
	if len(p.Data) > p.Meta.Limit {
		return fmt.Errorf("page holds %d items but limit is %d", len(p.Data), p.Meta.Limit)
	}
	return nil
}

// Ptr returns a pointer to v. Optional numeric fields are pointers so that an
// explicit zero survives re-encoding.
func Ptr[T any](v T) *T {
	return &v
}

// Pagination holds the query parameters accepted by list endpoints.
type Pagination struct {
	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=20"`
}

// APIError is the body the API sends with a non-2xx status:
// {"error": {"message": "...", "code": 4000, "data": {...}}}.
type APIError struct {
	Message string          `json:"message"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ParseAPIError extracts the error object from a response body.
// It returns nil when the body does not carry one.
func ParseAPIError(body []byte) *APIError {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return nil
	}
	if envelope.Error.Message == "" && envelope.Error.Code == 0 {
		return nil
	}
	return envelope.Error
}
