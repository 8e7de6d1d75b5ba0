package pages

import (
	"strings"

	slug "github.com/goliatone/go-slug"
)

// normalizeSlug cleans a requested slug before lookup. Slugs that already
// satisfy the canonical rules pass through untouched so authored keys are
// never rewritten; everything else is normalized best-effort.
func normalizeSlug(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || slug.IsValid(trimmed) {
		return trimmed
	}
	normalized, err := slug.Normalize(trimmed)
	if err != nil || normalized == "" {
		return trimmed
	}
	return normalized
}
