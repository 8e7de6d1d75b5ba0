package menus

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryMenuRepository is an in-memory menu store for scaffolding/tests.
type MemoryMenuRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*MenuItem
	order []uuid.UUID
}

// NewMemoryMenuRepository constructs the repository.
func NewMemoryMenuRepository() *MemoryMenuRepository {
	return &MemoryMenuRepository{
		items: make(map[uuid.UUID]*MenuItem),
	}
}

// Create inserts the supplied menu row.
func (m *MemoryMenuRepository) Create(_ context.Context, record *MenuItem) (*MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneMenuItem(record)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	for _, content := range copied.Contents {
		if content.ID == uuid.Nil {
			content.ID = uuid.New()
		}
		content.MenuID = copied.ID
	}
	m.items[copied.ID] = copied
	m.order = append(m.order, copied.ID)
	return cloneMenuItem(copied), nil
}

// ListVisible returns visible rows ordered by sort_order ascending.
func (m *MemoryMenuRepository) ListVisible(_ context.Context) ([]*MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*MenuItem, 0, len(m.order))
	for _, id := range m.order {
		record := m.items[id]
		if record == nil || !record.IsVisible {
			continue
		}
		out = append(out, cloneMenuItem(record))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	return out, nil
}

func cloneMenuItem(record *MenuItem) *MenuItem {
	if record == nil {
		return nil
	}
	copied := *record
	if record.ParentID != nil {
		parent := *record.ParentID
		copied.ParentID = &parent
	}
	copied.Contents = make([]*MenuContent, 0, len(record.Contents))
	for _, content := range record.Contents {
		if content == nil {
			continue
		}
		cc := *content
		copied.Contents = append(copied.Contents, &cc)
	}
	return &copied
}
