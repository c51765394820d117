package submission

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
)

const (
	maxTitleLength       = 50
	minDescriptionLength = 10
	maxDescriptionLength = 500
)

// rule is one predicate+message pair bound to a field path. Rules run in
// table order and never short-circuit across fields.
type rule struct {
	path    string
	message string
	fail    func(Values) bool
}

var rules = []rule{
	{
		path:    "title",
		message: "title is required",
		fail:    func(v Values) bool { return strings.TrimSpace(v.Title) == "" },
	},
	{
		path:    "title",
		message: "title must be at most 50 characters",
		fail:    func(v Values) bool { return utf8.RuneCountInString(v.Title) > maxTitleLength },
	},
	{
		path:    "description",
		message: "description must be at least 10 characters",
		fail:    func(v Values) bool { return utf8.RuneCountInString(v.Description) < minDescriptionLength },
	},
	{
		path:    "description",
		message: "description must be at most 500 characters",
		fail:    func(v Values) bool { return utf8.RuneCountInString(v.Description) > maxDescriptionLength },
	},
	{
		path:    "link",
		message: "link must be a valid URL",
		fail:    func(v Values) bool { return !isURL(v.Link) },
	},
	{
		path:    "cardImage",
		message: "cardImage must be a valid URL",
		fail:    func(v Values) bool { return !isURL(v.CardImage) },
	},
	{
		path:    "logo",
		message: "logo must be a valid URL",
		fail:    func(v Values) bool { return !isURL(v.Logo) },
	},
	{
		path:    "banner",
		message: "banner must be a valid URL",
		fail:    func(v Values) bool { return !isURL(v.Banner) },
	},
	{
		path:    "tags",
		message: "tags must be a comma-separated list without empty entries",
		fail:    func(v Values) bool { return splitNonEmpty(v.Tags) == nil },
	},
	{
		path:    "projectDates",
		message: "project start and end dates are required",
		fail:    func(v Values) bool { return v.ProjectStart.IsZero() || v.ProjectEnd.IsZero() },
	},
	{
		path:    "projectDates",
		message: "project start date must not be after the end date",
		fail: func(v Values) bool {
			if v.ProjectStart.IsZero() || v.ProjectEnd.IsZero() {
				return false
			}
			return v.ProjectStart.After(v.ProjectEnd)
		},
	},
	{
		path:    "contributors",
		message: "every contributor must be a 0x-prefixed Ethereum address",
		fail: func(v Values) bool {
			addresses := splitNonEmpty(v.Contributors)
			if addresses == nil {
				return true
			}
			for _, address := range addresses {
				if !isAddress(address) {
					return true
				}
			}
			return false
		},
	},
}

// Validate runs every rule against the draft and either returns the
// validated, list-transformed values or the full set of violations. It never
// returns an error by any other channel; invalid drafts yield a zero
// Validated and a non-empty issue list.
func Validate(v Values) (Validated, []Issue) {
	var issues []Issue
	for _, r := range rules {
		if r.fail(v) {
			issues = append(issues, Issue{Path: r.path, Message: r.message})
		}
	}
	if len(issues) > 0 {
		return Validated{}, issues
	}

	return Validated{
		Title:                         v.Title,
		Description:                   v.Description,
		Link:                          v.Link,
		CardImage:                     v.CardImage,
		Logo:                          v.Logo,
		Banner:                        v.Banner,
		Tags:                          splitNonEmpty(v.Tags),
		ProjectStart:                  v.ProjectStart,
		ProjectEnd:                    v.ProjectEnd,
		Contributors:                  splitNonEmpty(v.Contributors),
		AcceptTerms:                   v.AcceptTerms,
		ConfirmContributorsPermission: v.ConfirmContributorsPermission,
	}, nil
}

// splitNonEmpty splits a comma-separated string into trimmed segments. It
// returns nil when the input is empty or any segment trims to nothing, so
// callers can treat nil as "invalid list".
func splitNonEmpty(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			return nil
		}
		out = append(out, trimmed)
	}
	return out
}

// isAddress reports whether s is 0x followed by 40 hexadecimal characters.
// go-ethereum's predicate also accepts bare hex, so the prefix is checked
// separately.
func isAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

func isURL(s string) bool {
	parsed, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}
