package menus

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// MenuRepository is the lookup contract consumed by the menu forest builder.
type MenuRepository interface {
	ListVisible(ctx context.Context) ([]*MenuItem, error)
	Create(ctx context.Context, record *MenuItem) (*MenuItem, error)
}

// NewMenuItemRepository creates the bun-backed repository for MenuItem rows.
func NewMenuItemRepository(db *bun.DB) repository.Repository[*MenuItem] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*MenuItem]{
		NewRecord: func() *MenuItem { return &MenuItem{} },
		GetID: func(item *MenuItem) uuid.UUID {
			return item.ID
		},
		SetID: func(item *MenuItem, id uuid.UUID) {
			item.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(item *MenuItem) string {
			return item.ID.String()
		},
	})
}

// NewMenuContentRepository creates the bun-backed repository for localized
// menu names.
func NewMenuContentRepository(db *bun.DB) repository.Repository[*MenuContent] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*MenuContent]{
		NewRecord: func() *MenuContent { return &MenuContent{} },
		GetID: func(content *MenuContent) uuid.UUID {
			return content.ID
		},
		SetID: func(content *MenuContent, id uuid.UUID) {
			content.ID = id
		},
	})
}
