package metadata

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-hypercerts/pkg/submission"
)

func validatedFixture() submission.Validated {
	return submission.Validated{
		Title:        "Edge Esmeralda Hypercert",
		Description:  "A month-long community build sprint.",
		Link:         "https://example.org/project",
		CardImage:    "https://example.org/card.png",
		Logo:         "https://example.org/logo.png",
		Banner:       "https://example.org/banner.png",
		Tags:         []string{"impact", "climate"},
		ProjectStart: time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
		ProjectEnd:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		Contributors: []string{
			"0x" + strings.Repeat("a", 40),
			"0x" + strings.Repeat("b", 40),
		},
		AcceptTerms:                   true,
		ConfirmContributorsPermission: true,
	}
}

func TestFormatFixedClaimValues(t *testing.T) {
	v := validatedFixture()
	meta, err := Format(v, ExtrasFor(v))
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	if meta.Version != SchemaVersion {
		t.Fatalf("unexpected version %q", meta.Version)
	}
	if diff := cmp.Diff([]string{"all"}, meta.Hypercert.ImpactScope.Value); diff != "" {
		t.Fatalf("impact scope mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Public Display"}, meta.Hypercert.Rights.Value); diff != "" {
		t.Fatalf("rights mismatch (-want +got):\n%s", diff)
	}
	if len(meta.Hypercert.ImpactScope.Excludes) != 0 || len(meta.Hypercert.Rights.Excludes) != 0 {
		t.Fatalf("expected empty exclusion lists")
	}

	wantScope := []string{"Edge Esmeralda", "Hypercert", "impact", "climate"}
	if diff := cmp.Diff(wantScope, meta.Hypercert.WorkScope.Value); diff != "" {
		t.Fatalf("work scope mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatTimeframesFromProjectDates(t *testing.T) {
	v := validatedFixture()
	meta, err := Format(v, ExtrasFor(v))
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	want := []int64{v.ProjectStart.Unix(), v.ProjectEnd.Unix()}
	if diff := cmp.Diff(want, meta.Hypercert.WorkTimeframe.Value); diff != "" {
		t.Fatalf("work timeframe mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, meta.Hypercert.ImpactTimeframe.Value); diff != "" {
		t.Fatalf("impact timeframe mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatDeterministic(t *testing.T) {
	v := validatedFixture()
	extras := ExtrasFor(v)

	first, err := Format(v, extras)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	second, err := Format(v, extras)
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(firstJSON) != string(secondJSON) {
		t.Fatalf("format is not deterministic:\n%s\n%s", firstJSON, secondJSON)
	}
}

func TestFormatSanitizesMarkup(t *testing.T) {
	v := validatedFixture()
	v.Title = `Edge <script>alert("x")</script>Esmeralda`
	v.Description = "A <b>month-long</b> community build sprint."

	meta, err := Format(v, ExtrasFor(v))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if strings.Contains(meta.Name, "<") {
		t.Fatalf("markup survived in name: %q", meta.Name)
	}
	if strings.Contains(meta.Description, "<") {
		t.Fatalf("markup survived in description: %q", meta.Description)
	}
}

func TestFormatRejectsMalformedContributor(t *testing.T) {
	v := validatedFixture()
	v.Contributors = []string{"not-an-address"}

	if _, err := Format(v, ExtrasFor(v)); err == nil {
		t.Fatalf("expected schema validation to reject a malformed contributor")
	}
}

func TestFormatDefaultsWorkScope(t *testing.T) {
	v := validatedFixture()
	meta, err := Format(v, Extras{})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if diff := cmp.Diff(DefaultWorkScope, meta.Hypercert.WorkScope.Value); diff != "" {
		t.Fatalf("default work scope mismatch (-want +got):\n%s", diff)
	}
}
