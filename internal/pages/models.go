package pages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitekit/internal/i18n"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Page is a named, addressable unit of the site. Authoring happens in an
// external system; this module only reads.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID           uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	Slug         string         `bun:"slug,notnull" json:"slug"`
	Status       string         `bun:"status,notnull,default:'draft'" json:"status"`
	TemplateType string         `bun:"template_type" json:"template_type,omitempty"`
	SEOKeywords  string         `bun:"seo_keywords" json:"seo_keywords,omitempty"`
	CreatedAt    time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	Contents     []*PageContent `bun:"rel:has-many,join:id=page_id" json:"contents,omitempty"`
}

// PageContent is one language's rendering of a page. Zero-or-one row exists
// per (page, language) pair; Content holds the serialized component tree and
// stays opaque until decoded.
type PageContent struct {
	bun.BaseModel `bun:"table:page_contents,alias:pc"`

	ID             uuid.UUID `bun:",pk,type:uuid" json:"id"`
	PageID         uuid.UUID `bun:"page_id,notnull,type:uuid" json:"page_id"`
	Language       string    `bun:"language,notnull" json:"language"`
	Title          string    `bun:"title" json:"title,omitempty"`
	Excerpt        string    `bun:"excerpt" json:"excerpt,omitempty"`
	Content        string    `bun:"content" json:"content,omitempty"`
	SEOTitle       string    `bun:"seo_title" json:"seo_title,omitempty"`
	SEODescription string    `bun:"seo_description" json:"seo_description,omitempty"`
	CreatedAt      time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ContentFor returns the content row for the language, or nil when the page
// has no row in that language.
func (p *Page) ContentFor(lang i18n.Language) *PageContent {
	if p == nil {
		return nil
	}
	for _, content := range p.Contents {
		if content != nil && content.Language == string(lang) {
			return content
		}
	}
	return nil
}

// PageSummary is the projection used by the 404 debug payload.
type PageSummary struct {
	ID     uuid.UUID `json:"id"`
	Slug   string    `json:"slug"`
	Status string    `json:"status"`
}

// Summary projects the page into its debug listing shape.
func (p *Page) Summary() PageSummary {
	return PageSummary{ID: p.ID, Slug: p.Slug, Status: p.Status}
}
