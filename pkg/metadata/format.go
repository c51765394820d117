package metadata

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-hypercerts/pkg/submission"
)

var (
	sanitizerOnce sync.Once
	sanitizer     *bluemonday.Policy
)

// textSanitizer strips all markup from free-text fields before they are
// embedded in the metadata object, which downstream UIs render verbatim.
func textSanitizer() *bluemonday.Policy {
	sanitizerOnce.Do(func() {
		sanitizer = bluemonday.StrictPolicy()
	})
	return sanitizer
}

func sanitize(raw string) string {
	return strings.TrimSpace(textSanitizer().Sanitize(raw))
}

// Format builds the normalized metadata object from validated submission
// values plus the explicit extras. It is deterministic: identical inputs
// produce identical output, with no clock or randomness involved beyond the
// timestamps already present in the validated dates. The returned object has
// been checked against the embedded metadata schema; a violation is the only
// error path.
func Format(v submission.Validated, extras Extras) (HypercertMetadata, error) {
	workScope := extras.WorkScope
	if len(workScope) == 0 {
		workScope = DefaultWorkScope
	}
	scope := make([]string, 0, len(workScope))
	for _, entry := range workScope {
		if cleaned := sanitize(entry); cleaned != "" {
			scope = append(scope, cleaned)
		}
	}

	start := v.ProjectStart.UTC()
	end := v.ProjectEnd.UTC()
	timeframeDisplay := start.Format("2006-01-02") + " → " + end.Format("2006-01-02")

	meta := HypercertMetadata{
		Name:        sanitize(v.Title),
		Description: sanitize(v.Description),
		ExternalURL: v.Link,
		Image:       v.CardImage,
		Version:     SchemaVersion,
		Properties:  extras.Properties,
		Hypercert: ClaimData{
			ImpactScope: Dimension{
				Name:         "Impact Scope",
				Value:        defaultImpactScope,
				Excludes:     []string{},
				DisplayValue: strings.Join(defaultImpactScope, ", "),
			},
			WorkScope: Dimension{
				Name:         "Work Scope",
				Value:        scope,
				Excludes:     []string{},
				DisplayValue: strings.Join(scope, ", "),
			},
			WorkTimeframe: Timeframe{
				Name:         "Work Timeframe",
				Value:        []int64{start.Unix(), end.Unix()},
				DisplayValue: timeframeDisplay,
			},
			ImpactTimeframe: Timeframe{
				Name:         "Impact Timeframe",
				Value:        []int64{start.Unix(), end.Unix()},
				DisplayValue: timeframeDisplay,
			},
			Contributors: Contributors{
				Name:         "Contributors",
				Value:        v.Contributors,
				DisplayValue: strings.Join(v.Contributors, ", "),
			},
			Rights: Dimension{
				Name:         "Rights",
				Value:        defaultRights,
				Excludes:     []string{},
				DisplayValue: strings.Join(defaultRights, ", "),
			},
		},
	}

	if err := validateAgainstSchema(meta); err != nil {
		return HypercertMetadata{}, fmt.Errorf("metadata: formatted object rejected by schema: %w", err)
	}
	return meta, nil
}
