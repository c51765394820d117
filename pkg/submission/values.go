// Package submission defines the hypercert submission draft and its
// validation rules. Validation is data driven: an ordered table of
// predicate+message pairs runs independently per field and every violation
// is collected, so callers can surface all problems at once instead of
// stopping at the first.
package submission

import "time"

// Values is the in-memory draft of a submission. It is created with
// defaults, mutated field by field as the user types, and validated on
// submit; nothing in this package persists it.
type Values struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link" yaml:"link"`
	CardImage   string `json:"cardImage" yaml:"cardImage"`
	Logo        string `json:"logo" yaml:"logo"`
	Banner      string `json:"banner" yaml:"banner"`

	// Tags is the raw comma-separated tag string as typed.
	Tags string `json:"tags" yaml:"tags"`

	ProjectStart time.Time `json:"projectStart" yaml:"projectStart"`
	ProjectEnd   time.Time `json:"projectEnd" yaml:"projectEnd"`

	// Work dates are captured separately in the draft but carry no schema
	// rule; the metadata timeframes derive from the project date range.
	WorkStart time.Time `json:"workStart" yaml:"workStart"`
	WorkEnd   time.Time `json:"workEnd" yaml:"workEnd"`

	// Contributors is the raw comma-and-space-separated address list.
	Contributors string `json:"contributors" yaml:"contributors"`

	// The acknowledgements carry no schema rule; callers gate submission on
	// them being true.
	AcceptTerms                   bool `json:"acceptTerms" yaml:"acceptTerms"`
	ConfirmContributorsPermission bool `json:"confirmContributorsPermission" yaml:"confirmContributorsPermission"`
}

// Default project date range seeded into new drafts. Inherited from the
// event the original form was built for; callers overwrite it freely.
var (
	DefaultProjectStart = time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)
	DefaultProjectEnd   = time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
)

// NewValues returns a draft seeded with the default project date range.
func NewValues() Values {
	return Values{
		ProjectStart: DefaultProjectStart,
		ProjectEnd:   DefaultProjectEnd,
		WorkStart:    DefaultProjectStart,
		WorkEnd:      DefaultProjectEnd,
	}
}

// Validated holds the outcome of a successful validation pass. Raw text
// fields that represent lists (tags, contributors) arrive here already split
// and trimmed; everything else is copied through.
type Validated struct {
	Title       string
	Description string
	Link        string
	CardImage   string
	Logo        string
	Banner      string

	// Tags holds the trimmed, non-empty tag segments in input order.
	Tags []string

	ProjectStart time.Time
	ProjectEnd   time.Time

	// Contributors holds the trimmed addresses in input order.
	Contributors []string

	AcceptTerms                   bool
	ConfirmContributorsPermission bool
}

// Issue is a single field-level validation failure. Path addresses the
// offending field; submission stays blocked until the issue list is empty.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}
