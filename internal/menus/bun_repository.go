package menus

import (
	"context"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

// BunMenuRepository is the storage-backed repository. The *bun.DB handle is
// injected at construction; connection lifecycle belongs to the hosting
// process.
type BunMenuRepository struct {
	db       *bun.DB
	items    repository.Repository[*MenuItem]
	contents repository.Repository[*MenuContent]
}

// NewBunMenuRepository constructs a MenuRepository backed by bun.
func NewBunMenuRepository(db *bun.DB) *BunMenuRepository {
	return &BunMenuRepository{
		db:       db,
		items:    NewMenuItemRepository(db),
		contents: NewMenuContentRepository(db),
	}
}

// ListVisible returns visible menu rows ordered by sort_order ascending with
// localized names loaded. The forest builder relies on this ordering and does
// not re-sort.
func (r *BunMenuRepository) ListVisible(ctx context.Context) ([]*MenuItem, error) {
	records, _, err := r.items.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.is_visible = ?", true)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.sort_order ASC")
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Relation("Contents")
		}),
	)
	if err != nil {
		return nil, &RepositoryError{Op: "list visible menus", Err: err}
	}
	return records, nil
}

// Create inserts a menu row along with its localized names. Used by seeds and
// tests.
func (r *BunMenuRepository) Create(ctx context.Context, record *MenuItem) (*MenuItem, error) {
	if r.db == nil {
		return nil, fmt.Errorf("menu repository: database not configured")
	}

	created, err := r.items.Create(ctx, record)
	if err != nil {
		return nil, &RepositoryError{Op: "create menu", Err: err}
	}
	for _, content := range record.Contents {
		if content == nil {
			continue
		}
		content.MenuID = created.ID
		if _, err := r.contents.Create(ctx, content); err != nil {
			return nil, &RepositoryError{Op: "create menu content", Err: err}
		}
	}
	created.Contents = record.Contents
	return created, nil
}
