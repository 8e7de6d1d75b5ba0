package menus

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-sitekit/internal/i18n"
)

// MenuNode is one entry of the built navigation forest. Both languages'
// names ride along so a client can switch display language without another
// fetch.
type MenuNode struct {
	ID        uuid.UUID   `json:"id"`
	ParentID  *uuid.UUID  `json:"parent_id,omitempty"`
	NameZH    string      `json:"name_zh,omitempty"`
	NameEN    string      `json:"name_en,omitempty"`
	URL       string      `json:"url"`
	SortOrder int         `json:"sort_order"`
	Icon      string      `json:"icon,omitempty"`
	Children  []*MenuNode `json:"children"`
}

// BuildForest assembles flat menu rows into a rooted, ordered forest.
// First pass indexes every row by id; second pass links children to parents.
// Rows without a parent become roots; rows whose parent id matches no known
// row are dropped, an intentional tolerance for dangling references. Sibling
// order follows input order: the repository already sorts by sort_order and
// the builder does not re-sort.
func BuildForest(rows []*MenuItem) []*MenuNode {
	byID := make(map[uuid.UUID]*MenuNode, len(rows))
	ordered := make([]*MenuNode, 0, len(rows))

	for _, row := range rows {
		if row == nil {
			continue
		}
		node := &MenuNode{
			ID:        row.ID,
			ParentID:  row.ParentID,
			NameZH:    row.nameIn(i18n.LanguageZH),
			NameEN:    row.nameIn(i18n.LanguageEN),
			URL:       row.URL,
			SortOrder: row.SortOrder,
			Icon:      row.Icon,
			Children:  []*MenuNode{},
		}
		byID[row.ID] = node
		ordered = append(ordered, node)
	}

	roots := make([]*MenuNode, 0, len(ordered))
	for _, node := range ordered {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := byID[*node.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
		// Orphans fall through: neither root nor child.
	}
	return roots
}
