// Package graphql implements hyperboard.Fetcher against the remote hypercerts
// GraphQL API. Two query documents drive the retrieval: one resolves a
// hyperboard to its first section's entry ids, one resolves a single
// hypercert id to its record.
package graphql

import (
	"context"
	"net/http"

	mb "github.com/machinebox/graphql"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-hypercerts/pkg/hyperboard"
)

const hyperboardQuery = `
query hyperboardById($id: UUID!) {
  hyperboards(where: {id: {eq: $id}}) {
    data {
      sections {
        data {
          entries {
            id
          }
        }
      }
    }
  }
}`

const hypercertQuery = `
query hypercertById($id: String!) {
  hypercerts(where: {hypercert_id: {eq: $id}}) {
    data {
      hypercert_id
      metadata {
        name
        description
        external_url
        image
        work_scope
        work_timeframe_from
        work_timeframe_to
        impact_scope
        contributors
        rights
      }
    }
  }
}`

type hyperboardResponse struct {
	Hyperboards struct {
		Data []struct {
			Sections struct {
				Data []struct {
					Entries []struct {
						ID string `json:"id"`
					} `json:"entries"`
				} `json:"data"`
			} `json:"sections"`
		} `json:"data"`
	} `json:"hyperboards"`
}

type hypercertResponse struct {
	Hypercerts struct {
		Data []hyperboard.Record `json:"data"`
	} `json:"hypercerts"`
}

// Config carries the pre-resolved dependencies for a Client. Construction
// helpers live in the top-level hypercerts package.
type Config struct {
	// HTTPClient overrides the transport used for GraphQL requests.
	HTTPClient *http.Client
	// Logger receives the diagnostic entry-id log emitted before fan-out.
	// Nil disables logging.
	Logger *zap.Logger
	// FanoutLimit caps the number of concurrent per-hypercert queries.
	// Zero or negative preserves the unbounded fan-out.
	FanoutLimit int
}

// Client resolves a fixed hyperboard against a fixed GraphQL endpoint.
type Client struct {
	gql     *mb.Client
	boardID string
	log     *zap.Logger
	limit   int
}

// Ensure the implementation satisfies the public interface.
var _ hyperboard.Fetcher = (*Client)(nil)

// New constructs a Client for the given endpoint and hyperboard id.
func New(endpoint, boardID string, cfg Config) *Client {
	var opts []mb.ClientOption
	if cfg.HTTPClient != nil {
		opts = append(opts, mb.WithHTTPClient(cfg.HTTPClient))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		gql:     mb.NewClient(endpoint, opts...),
		boardID: boardID,
		log:     logger,
		limit:   cfg.FanoutLimit,
	}
}

// Fetch resolves the hyperboard to its hypercert records. Every failure is
// folded into the envelope at this boundary; callers never see a raised
// error alongside data.
func (c *Client) Fetch(ctx context.Context) hyperboard.Envelope {
	records, err := c.fetch(ctx)
	if err != nil {
		return hyperboard.Failure(err)
	}
	return hyperboard.Success(records)
}

func (c *Client) fetch(ctx context.Context) ([]hyperboard.Record, error) {
	ids, err := c.resolveEntryIDs(ctx)
	if err != nil {
		return nil, err
	}

	c.log.Debug("resolved hyperboard entries",
		zap.String("hyperboard_id", c.boardID),
		zap.Strings("hypercert_ids", ids),
	)

	// One slot per id so output order follows the entry list, not response
	// arrival order.
	slots := make([]hyperboard.Record, len(ids))
	found := make([]bool, len(ids))

	group, groupCtx := errgroup.WithContext(ctx)
	if c.limit > 0 {
		group.SetLimit(c.limit)
	}
	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			record, ok, err := c.fetchHypercert(groupCtx, id)
			if err != nil {
				return err
			}
			if ok {
				slots[i] = record
				found[i] = true
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	records := make([]hyperboard.Record, 0, len(ids))
	for i := range slots {
		if found[i] {
			records = append(records, slots[i])
		}
	}
	return records, nil
}

// resolveEntryIDs extracts the hypercert ids from the first entry set of the
// first section of the first returned hyperboard. Any gap along that path is
// a not-found failure; no per-hypercert queries are issued.
func (c *Client) resolveEntryIDs(ctx context.Context) ([]string, error) {
	req := mb.NewRequest(hyperboardQuery)
	req.Var("id", c.boardID)

	var resp hyperboardResponse
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, &hyperboard.TransportError{Query: "hyperboardById", Err: err}
	}

	boards := resp.Hyperboards.Data
	if len(boards) == 0 {
		return nil, hyperboard.ErrNotFound
	}
	sections := boards[0].Sections.Data
	if len(sections) == 0 || len(sections[0].Entries) == 0 {
		return nil, hyperboard.ErrNotFound
	}

	ids := make([]string, 0, len(sections[0].Entries))
	for _, entry := range sections[0].Entries {
		ids = append(ids, entry.ID)
	}
	return ids, nil
}

// fetchHypercert returns the first record for the id, or ok=false when the
// result list is empty and the record should be dropped from the aggregate.
func (c *Client) fetchHypercert(ctx context.Context, id string) (hyperboard.Record, bool, error) {
	req := mb.NewRequest(hypercertQuery)
	req.Var("id", id)

	var resp hypercertResponse
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, false, &hyperboard.TransportError{Query: "hypercertById", Err: err}
	}
	if len(resp.Hypercerts.Data) == 0 {
		return nil, false, nil
	}
	return resp.Hypercerts.Data[0], true, nil
}
