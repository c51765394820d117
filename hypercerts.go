// Package hypercerts is a client library for browsing and submitting
// hypercert impact-certificate records. It retrieves the hypercerts of a
// curated hyperboard from a GraphQL endpoint and validates and formats
// submission drafts into normalized metadata objects.
package hypercerts

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	internalgraphql "github.com/goliatone/go-hypercerts/internal/graphql"
	"github.com/goliatone/go-hypercerts/pkg/hyperboard"
	"github.com/goliatone/go-hypercerts/pkg/metadata"
	"github.com/goliatone/go-hypercerts/pkg/submission"
)

// Envelope wraps either the retrieved records or a single error, never both.
type Envelope = hyperboard.Envelope

// Record is one hypercert payload, passed through unmodified.
type Record = hyperboard.Record

// Issue is a field-level validation failure.
type Issue = submission.Issue

// Values is a submission draft; Validated is its checked counterpart.
type (
	Values    = submission.Values
	Validated = submission.Validated
)

// HypercertMetadata is the normalized metadata object produced on submit.
type HypercertMetadata = metadata.HypercertMetadata

// ErrNotFound is re-exported for callers inspecting failure envelopes.
var ErrNotFound = hyperboard.ErrNotFound

// Option customises the client configuration.
type Option func(*settings)

type settings struct {
	httpClient  *http.Client
	logger      *zap.Logger
	fanoutLimit int
	fetcher     hyperboard.Fetcher
}

// WithHTTPClient overrides the transport used for GraphQL requests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.httpClient = client
	}
}

// WithLogger injects the logger that receives retrieval diagnostics. The
// default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithFanoutLimit caps the number of concurrent per-hypercert queries. The
// default is unbounded, matching one request per hyperboard entry.
func WithFanoutLimit(limit int) Option {
	return func(s *settings) {
		s.fanoutLimit = limit
	}
}

// WithFetcher replaces the GraphQL-backed fetcher entirely; intended for
// tests and callers with their own transport.
func WithFetcher(fetcher hyperboard.Fetcher) Option {
	return func(s *settings) {
		s.fetcher = fetcher
	}
}

// Client fetches the hypercerts of one fixed hyperboard. Endpoint and board
// id are process-wide configuration, set once at construction.
type Client struct {
	fetcher hyperboard.Fetcher
}

// New constructs a Client for the given GraphQL endpoint and hyperboard id.
func New(endpoint, boardID string, options ...Option) *Client {
	var s settings
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&s)
	}

	fetcher := s.fetcher
	if fetcher == nil {
		fetcher = internalgraphql.New(endpoint, boardID, internalgraphql.Config{
			HTTPClient:  s.httpClient,
			Logger:      s.logger,
			FanoutLimit: s.fanoutLimit,
		})
	}
	return &Client{fetcher: fetcher}
}

// FetchHypercerts resolves the configured hyperboard to its hypercert
// records. Failures are reported through the envelope; the method never
// returns an error by another channel.
func (c *Client) FetchHypercerts(ctx context.Context) Envelope {
	return c.fetcher.Fetch(ctx)
}

// ValidateSubmission checks a draft against the submission schema, returning
// either the validated values or every violation keyed by field path.
func ValidateSubmission(v Values) (Validated, []Issue) {
	return submission.Validate(v)
}

// FormatMetadata builds the normalized metadata object from validated values
// and explicit extras (work-scope list plus optional properties).
func FormatMetadata(v Validated, extras metadata.Extras) (HypercertMetadata, error) {
	return metadata.Format(v, extras)
}
