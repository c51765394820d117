// Package metadata builds the normalized, schema-versioned metadata object
// minted alongside a hypercert. Format is a pure transform over validated
// submission values; the only way it fails is the produced object not
// conforming to the embedded metadata schema.
package metadata

import "github.com/goliatone/go-hypercerts/pkg/submission"

// SchemaVersion tags every formatted metadata object.
const SchemaVersion = "0.0.1"

// Fixed claim values applied to every submission.
var (
	defaultImpactScope = []string{"all"}
	defaultRights      = []string{"Public Display"}
)

// DefaultWorkScope seeds the work-scope list callers pass through Extras.
// The original form pre-populates its tag badges with these before appending
// user-entered tags.
var DefaultWorkScope = []string{"Edge Esmeralda", "Hypercert"}

// Dimension is one claim dimension with optional exclusions.
type Dimension struct {
	Name         string   `json:"name"`
	Value        []string `json:"value"`
	Excludes     []string `json:"excludes"`
	DisplayValue string   `json:"display_value"`
}

// Timeframe is a claim dimension whose value is a [start, end] pair of
// seconds-since-epoch timestamps.
type Timeframe struct {
	Name         string  `json:"name"`
	Value        []int64 `json:"value"`
	DisplayValue string  `json:"display_value"`
}

// Contributors lists the addresses credited with the work.
type Contributors struct {
	Name         string   `json:"name"`
	Value        []string `json:"value"`
	DisplayValue string   `json:"display_value"`
}

// ClaimData is the hypercert claim block of the metadata object.
type ClaimData struct {
	ImpactScope     Dimension    `json:"impact_scope"`
	WorkScope       Dimension    `json:"work_scope"`
	WorkTimeframe   Timeframe    `json:"work_timeframe"`
	ImpactTimeframe Timeframe    `json:"impact_timeframe"`
	Contributors    Contributors `json:"contributors"`
	Rights          Dimension    `json:"rights"`
}

// Property is an extra descriptive trait attached to the metadata object.
type Property struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// HypercertMetadata is the normalized metadata object handed downstream for
// minting. It is produced once per submission and never mutated.
type HypercertMetadata struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ExternalURL string     `json:"external_url,omitempty"`
	Image       string     `json:"image"`
	Version     string     `json:"version"`
	Properties  []Property `json:"properties,omitempty"`
	Hypercert   ClaimData  `json:"hypercert"`
}

// Extras carries the descriptive inputs that do not come from the validated
// draft. WorkScope is explicit here so the transform stays pure: the form
// layer owns the badge list (defaults plus user tags) and passes it in.
type Extras struct {
	WorkScope  []string
	Properties []Property
}

// ExtrasFor builds Extras from validated values using the default work-scope
// seed plus the draft's tags, in that order.
func ExtrasFor(v submission.Validated) Extras {
	scope := make([]string, 0, len(DefaultWorkScope)+len(v.Tags))
	scope = append(scope, DefaultWorkScope...)
	scope = append(scope, v.Tags...)
	return Extras{WorkScope: scope}
}
