package repository

import (
	"errors"
	"fmt"

	"ads-dental-admin/internal/infrastructure/backend"
)

// ErrMalformedResponse marks a 2xx response whose records do not match the expected schema.
var ErrMalformedResponse = errors.New("malformed backend response")

// requireIdentities rejects a list response in which any record lacks its identity.
func requireIdentities(kind string, n int, idOf func(i int) int) error {
	for i := 0; i < n; i++ {
		if idOf(i) <= 0 {
			return &backend.RequestError{
				Operation:  backend.OpList,
				EntityKind: kind,
				Err:        fmt.Errorf("%w: record %d has no identity", ErrMalformedResponse, i),
			}
		}
	}
	return nil
}
