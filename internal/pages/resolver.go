package pages

import "github.com/goliatone/go-sitekit/internal/i18n"

// LocalizedPage is the single-language projection of a page record produced
// by Resolve.
type LocalizedPage struct {
	Language       i18n.Language
	Title          string
	Excerpt        string
	RawContent     string
	SEOTitle       string
	SEODescription string
	SEOKeywords    string
}

// Resolve selects the requested language's fields from a page record. Each
// field falls back independently: the requested language's value when
// non-empty, otherwise the other language's, otherwise empty. The policy is
// uniform across title, excerpt, content, and SEO fields so a partially
// translated page degrades predictably instead of showing per-field
// surprises.
func Resolve(page *Page, lang i18n.Language) LocalizedPage {
	resolved := LocalizedPage{Language: lang}
	if page == nil {
		return resolved
	}

	primary := page.ContentFor(lang)
	fallback := page.ContentFor(lang.Other())

	resolved.Title = pick(primary, fallback, func(c *PageContent) string { return c.Title })
	resolved.Excerpt = pick(primary, fallback, func(c *PageContent) string { return c.Excerpt })
	resolved.RawContent = pick(primary, fallback, func(c *PageContent) string { return c.Content })
	resolved.SEOTitle = pick(primary, fallback, func(c *PageContent) string { return c.SEOTitle })
	resolved.SEODescription = pick(primary, fallback, func(c *PageContent) string { return c.SEODescription })
	resolved.SEOKeywords = page.SEOKeywords
	return resolved
}

func pick(primary, fallback *PageContent, field func(*PageContent) string) string {
	if primary != nil {
		if value := field(primary); value != "" {
			return value
		}
	}
	if fallback != nil {
		return field(fallback)
	}
	return ""
}
