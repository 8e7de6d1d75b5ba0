package menus

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitekit/internal/i18n"
)

func item(id uuid.UUID, parent *uuid.UUID, order int, nameZH, nameEN string) *MenuItem {
	return &MenuItem{
		ID:        id,
		ParentID:  parent,
		URL:       "/" + nameEN,
		SortOrder: order,
		IsVisible: true,
		Contents: []*MenuContent{
			{Language: "zh", Name: nameZH},
			{Language: "en", Name: nameEN},
		},
	}
}

func TestBuildForest(t *testing.T) {
	t.Parallel()

	t.Run("empty_rows", func(t *testing.T) {
		t.Parallel()
		forest := BuildForest(nil)
		if len(forest) != 0 {
			t.Fatalf("expected empty forest got %d roots", len(forest))
		}
	})

	t.Run("roots_and_children", func(t *testing.T) {
		t.Parallel()
		rootID := uuid.New()
		childID := uuid.New()
		grandchildID := uuid.New()

		rows := []*MenuItem{
			item(rootID, nil, 1, "产品", "products"),
			item(childID, &rootID, 1, "硬件", "hardware"),
			item(grandchildID, &childID, 1, "传感器", "sensors"),
		}

		forest := BuildForest(rows)
		if len(forest) != 1 {
			t.Fatalf("expected 1 root got %d", len(forest))
		}
		root := forest[0]
		if root.ID != rootID || root.NameZH != "产品" || root.NameEN != "products" {
			t.Fatalf("unexpected root: %+v", root)
		}
		if len(root.Children) != 1 || root.Children[0].ID != childID {
			t.Fatalf("unexpected children: %+v", root.Children)
		}
		if len(root.Children[0].Children) != 1 || root.Children[0].Children[0].ID != grandchildID {
			t.Fatalf("unexpected grandchildren: %+v", root.Children[0].Children)
		}
	})

	t.Run("orphan_dropped", func(t *testing.T) {
		t.Parallel()
		missing := uuid.New()
		rows := []*MenuItem{
			item(uuid.New(), nil, 1, "首页", "home"),
			item(uuid.New(), &missing, 2, "孤儿", "orphan"),
		}

		forest := BuildForest(rows)
		if len(forest) != 1 {
			t.Fatalf("expected orphan dropped, got %d roots", len(forest))
		}
		if forest[0].NameEN != "home" {
			t.Fatalf("expected home root got %q", forest[0].NameEN)
		}
	})

	t.Run("sibling_order_preserved", func(t *testing.T) {
		t.Parallel()
		rows := []*MenuItem{
			item(uuid.New(), nil, 1, "一", "one"),
			item(uuid.New(), nil, 2, "二", "two"),
			item(uuid.New(), nil, 3, "三", "three"),
		}

		forest := BuildForest(rows)
		if len(forest) != 3 {
			t.Fatalf("expected 3 roots got %d", len(forest))
		}
		for i, want := range []string{"one", "two", "three"} {
			if forest[i].NameEN != want {
				t.Fatalf("expected %q at %d got %q", want, i, forest[i].NameEN)
			}
		}
	})

	t.Run("children_slice_never_nil", func(t *testing.T) {
		t.Parallel()
		forest := BuildForest([]*MenuItem{item(uuid.New(), nil, 1, "首页", "home")})
		if forest[0].Children == nil {
			t.Fatal("expected empty children slice, got nil")
		}
	})
}

func TestNameFor(t *testing.T) {
	t.Parallel()

	row := &MenuItem{
		Contents: []*MenuContent{
			{Language: "zh", Name: "首页"},
		},
	}
	if got := row.NameFor(i18n.LanguageZH); got != "首页" {
		t.Fatalf("expected zh name got %q", got)
	}
	if got := row.NameFor(i18n.LanguageEN); got != "首页" {
		t.Fatalf("expected fallback to zh got %q", got)
	}
	if got := (&MenuItem{}).NameFor(i18n.LanguageEN); got != "" {
		t.Fatalf("expected empty name got %q", got)
	}
}

func TestMemoryMenuRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryMenuRepository()

	second := item(uuid.New(), nil, 2, "二", "two")
	first := item(uuid.New(), nil, 1, "一", "one")
	hidden := item(uuid.New(), nil, 0, "藏", "hidden")
	hidden.IsVisible = false

	for _, row := range []*MenuItem{second, first, hidden} {
		if _, err := repo.Create(ctx, row); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	rows, err := repo.ListVisible(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected hidden row filtered, got %d rows", len(rows))
	}
	if rows[0].SortOrder != 1 || rows[1].SortOrder != 2 {
		t.Fatalf("expected sort_order ascending got %d %d", rows[0].SortOrder, rows[1].SortOrder)
	}
}
