package pages

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PageRepository is the lookup contract consumed by the view layer. Writes
// exist only for seeding: pages are authored externally.
type PageRepository interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*Page, error)
	ListSummaries(ctx context.Context, limit int) ([]PageSummary, error)
	Create(ctx context.Context, record *Page) (*Page, error)
}

// NewPageRecordRepository creates the bun-backed repository for Page records.
func NewPageRecordRepository(db *bun.DB) repository.Repository[*Page] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Page]{
		NewRecord: func() *Page { return &Page{} },
		GetID: func(p *Page) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Page, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *Page) string {
			return p.Slug
		},
	})
}

// NewPageContentRepository creates the bun-backed repository for per-language
// content rows.
func NewPageContentRepository(db *bun.DB) repository.Repository[*PageContent] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PageContent]{
		NewRecord: func() *PageContent { return &PageContent{} },
		GetID: func(pc *PageContent) uuid.UUID {
			return pc.ID
		},
		SetID: func(pc *PageContent, id uuid.UUID) {
			pc.ID = id
		},
	})
}
