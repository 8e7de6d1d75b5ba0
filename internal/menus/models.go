package menus

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitekit/internal/i18n"
)

// MenuItem is a navigation entry. ParentID is a self-referential link within
// the same table; rows form a forest once built.
type MenuItem struct {
	bun.BaseModel `bun:"table:menus,alias:m"`

	ID        uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	ParentID  *uuid.UUID     `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	URL       string         `bun:"url,notnull" json:"url"`
	SortOrder int            `bun:"sort_order,notnull,default:0" json:"sort_order"`
	IsVisible bool           `bun:"is_visible,notnull,default:true" json:"is_visible"`
	Icon      string         `bun:"icon" json:"icon,omitempty"`
	CreatedAt time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	Contents  []*MenuContent `bun:"rel:has-many,join:id=menu_id" json:"contents,omitempty"`
}

// MenuContent holds one language's display name for a menu item.
type MenuContent struct {
	bun.BaseModel `bun:"table:menu_contents,alias:mc"`

	ID       uuid.UUID `bun:",pk,type:uuid" json:"id"`
	MenuID   uuid.UUID `bun:"menu_id,notnull,type:uuid" json:"menu_id"`
	Language string    `bun:"language,notnull" json:"language"`
	Name     string    `bun:"name,notnull" json:"name"`
}

// NameFor resolves the display name for the language, falling back to the
// other language when the requested one is missing or empty.
func (m *MenuItem) NameFor(lang i18n.Language) string {
	if m == nil {
		return ""
	}
	if name := m.nameIn(lang); name != "" {
		return name
	}
	return m.nameIn(lang.Other())
}

func (m *MenuItem) nameIn(lang i18n.Language) string {
	for _, content := range m.Contents {
		if content != nil && content.Language == string(lang) {
			return content.Name
		}
	}
	return ""
}
