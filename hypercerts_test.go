package hypercerts

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-hypercerts/pkg/hyperboard"
	"github.com/goliatone/go-hypercerts/pkg/metadata"
	"github.com/goliatone/go-hypercerts/pkg/submission"
)

type staticFetcher struct {
	envelope hyperboard.Envelope
}

func (f staticFetcher) Fetch(context.Context) hyperboard.Envelope {
	return f.envelope
}

func TestClientDelegatesToFetcher(t *testing.T) {
	records := []Record{{"hypercert_id": "0xabc-1"}}
	client := New("", "", WithFetcher(staticFetcher{envelope: hyperboard.Success(records)}))

	env := client.FetchHypercerts(context.Background())
	if env.Failed() {
		t.Fatalf("unexpected failure: %v", env.Err)
	}
	if len(env.Data) != 1 {
		t.Fatalf("expected one record, got %d", len(env.Data))
	}
}

func TestClientSurfacesFailureEnvelope(t *testing.T) {
	client := New("", "", WithFetcher(staticFetcher{envelope: hyperboard.Failure(ErrNotFound)}))

	env := client.FetchHypercerts(context.Background())
	if !env.Failed() {
		t.Fatalf("expected failure envelope")
	}
	if !errors.Is(env.Err, hyperboard.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", env.Err)
	}
}

func TestValidateAndFormatPipeline(t *testing.T) {
	draft := submission.NewValues()
	draft.Title = "Community Garden Build"
	draft.Description = "Volunteers built twelve raised beds over four weekends."
	draft.Link = "https://example.org/garden"
	draft.CardImage = "https://example.org/garden/card.png"
	draft.Logo = "https://example.org/garden/logo.png"
	draft.Banner = "https://example.org/garden/banner.png"
	draft.Tags = "community, food"
	draft.Contributors = "0x0123456789abcdef0123456789abcdef01234567"
	draft.AcceptTerms = true
	draft.ConfirmContributorsPermission = true

	validated, issues := ValidateSubmission(draft)
	if len(issues) != 0 {
		t.Fatalf("expected valid draft, got %#v", issues)
	}

	meta, err := FormatMetadata(validated, metadata.ExtrasFor(validated))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if meta.Name != "Community Garden Build" {
		t.Fatalf("unexpected name %q", meta.Name)
	}
	if len(meta.Hypercert.Contributors.Value) != 1 {
		t.Fatalf("expected one contributor, got %v", meta.Hypercert.Contributors.Value)
	}
}
