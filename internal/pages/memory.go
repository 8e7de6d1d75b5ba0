package pages

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryPageRepository is an in-memory page store for scaffolding/tests.
type MemoryPageRepository struct {
	mu        sync.RWMutex
	pages     map[uuid.UUID]*Page
	slugIndex map[string]uuid.UUID
}

// NewMemoryPageRepository constructs the repository.
func NewMemoryPageRepository() *MemoryPageRepository {
	return &MemoryPageRepository{
		pages:     make(map[uuid.UUID]*Page),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied page.
func (m *MemoryPageRepository) Create(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := clonePage(record)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now().UTC()
	}
	for _, content := range copied.Contents {
		if content.ID == uuid.Nil {
			content.ID = uuid.New()
		}
		content.PageID = copied.ID
	}
	m.pages[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return clonePage(copied), nil
}

// GetPublishedBySlug retrieves a published page by slug.
func (m *MemoryPageRepository) GetPublishedBySlug(_ context.Context, slug string) (*Page, error) {
	key := normalizeSlug(slug)

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[key]
	if !ok {
		return nil, &PageNotFoundError{Key: key}
	}
	page := m.pages[id]
	if page == nil || page.Status != StatusPublished {
		return nil, &PageNotFoundError{Key: key}
	}
	return clonePage(page), nil
}

// ListSummaries returns page summaries, most recent first.
func (m *MemoryPageRepository) ListSummaries(_ context.Context, limit int) ([]PageSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Page, 0, len(m.pages))
	for _, record := range m.pages {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if len(records) > limit {
		records = records[:limit]
	}
	summaries := make([]PageSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, record.Summary())
	}
	return summaries, nil
}

func clonePage(record *Page) *Page {
	if record == nil {
		return nil
	}
	copied := *record
	copied.Contents = make([]*PageContent, 0, len(record.Contents))
	for _, content := range record.Contents {
		if content == nil {
			continue
		}
		cc := *content
		copied.Contents = append(copied.Contents, &cc)
	}
	return &copied
}
