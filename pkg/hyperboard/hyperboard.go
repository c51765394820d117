// Package hyperboard defines the contracts for resolving a curated
// hyperboard into the hypercert records it references. Implementations live
// under internal/graphql; callers normally reach this package through the
// top-level hypercerts.Client.
package hyperboard

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when the configured hyperboard resolves to no
// hypercert entries: the board is missing, it has no sections, or its first
// section carries an empty entry list. The retrieval aborts before issuing
// any per-hypercert queries.
var ErrNotFound = errors.New("hyperboard: no hypercerts found for the configured hyperboard")

// Record is one hypercert as returned by the remote data source. The
// retrieval layer treats it as an opaque payload: attributes are fetched and
// passed through unmodified, never parsed or validated here.
type Record map[string]any

// Envelope is the sole externally observable result of a retrieval: either
// an ordered sequence of records or a single error, never both.
type Envelope struct {
	Data []Record
	Err  error
}

// Success wraps an ordered record sequence in a success envelope.
func Success(records []Record) Envelope {
	return Envelope{Data: records}
}

// Failure wraps an error in a failure envelope.
func Failure(err error) Envelope {
	return Envelope{Err: err}
}

// Failed reports whether the envelope carries an error.
func (e Envelope) Failed() bool {
	return e.Err != nil
}

// Fetcher resolves the configured hyperboard to its hypercert records.
// Implementations must never return an error through a second channel: every
// failure, including panics avoided by construction, is folded into the
// envelope.
type Fetcher interface {
	Fetch(ctx context.Context) Envelope
}

// TransportError wraps an underlying request failure (network error, non-2xx
// response, malformed GraphQL payload) with the name of the query that
// failed. It is fatal to the retrieval call; there is no retry.
type TransportError struct {
	Query string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("hyperboard: query %s failed: %v", e.Query, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
