package pages

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

// BunPageRepository is the storage-backed repository. The *bun.DB handle is
// injected at construction; connection lifecycle belongs to the hosting
// process.
type BunPageRepository struct {
	db       *bun.DB
	repo     repository.Repository[*Page]
	contents repository.Repository[*PageContent]
}

// NewBunPageRepository constructs a PageRepository backed by bun.
func NewBunPageRepository(db *bun.DB) *BunPageRepository {
	return &BunPageRepository{
		db:       db,
		repo:     NewPageRecordRepository(db),
		contents: NewPageContentRepository(db),
	}
}

// GetPublishedBySlug fetches the published page for the slug with every
// language's content row loaded. A page short on content rows still returns:
// missing languages simply resolve to nil.
func (r *BunPageRepository) GetPublishedBySlug(ctx context.Context, slug string) (*Page, error) {
	key := normalizeSlug(slug)
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", key).
				Where("?TableAlias.status = ?", StatusPublished)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Relation("Contents")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "get published page", key)
	}
	if len(records) == 0 {
		return nil, &PageNotFoundError{Key: key}
	}
	return records[0], nil
}

// ListSummaries returns the most recent pages regardless of status for the
// 404 debug payload.
func (r *BunPageRepository) ListSummaries(ctx context.Context, limit int) ([]PageSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.created_at DESC")
		}),
		repository.SelectPaginate(limit, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "list page summaries", "")
	}
	summaries := make([]PageSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, record.Summary())
	}
	return summaries, nil
}

// Create inserts a page along with its content rows. Used by seeds and tests.
func (r *BunPageRepository) Create(ctx context.Context, record *Page) (*Page, error) {
	if r.db == nil {
		return nil, fmt.Errorf("page repository: database not configured")
	}

	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "create page", record.Slug)
	}

	for _, content := range record.Contents {
		if content == nil {
			continue
		}
		content.PageID = created.ID
		if _, err := r.contents.Create(ctx, content); err != nil {
			return nil, mapRepositoryError(err, "create page content", record.Slug)
		}
	}
	created.Contents = record.Contents
	return created, nil
}

func mapRepositoryError(err error, op, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &PageNotFoundError{Key: key}
	}

	return &RepositoryError{Op: op, Err: err}
}
