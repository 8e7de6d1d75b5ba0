package pages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMemoryPageRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("published_lookup", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryPageRepository()
		if _, err := repo.Create(ctx, &Page{Slug: "about", Status: StatusPublished}); err != nil {
			t.Fatalf("create: %v", err)
		}

		page, err := repo.GetPublishedBySlug(ctx, "about")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if page.Slug != "about" {
			t.Fatalf("expected about got %q", page.Slug)
		}
	})

	t.Run("draft_is_invisible", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryPageRepository()
		if _, err := repo.Create(ctx, &Page{Slug: "wip", Status: StatusDraft}); err != nil {
			t.Fatalf("create: %v", err)
		}

		_, err := repo.GetPublishedBySlug(ctx, "wip")
		if !errors.Is(err, ErrPageNotFound) {
			t.Fatalf("expected not found got %v", err)
		}
	})

	t.Run("missing_slug", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryPageRepository()
		_, err := repo.GetPublishedBySlug(ctx, "nope")
		var notFound *PageNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected PageNotFoundError got %v", err)
		}
		if notFound.Key != "nope" {
			t.Fatalf("expected requested key got %q", notFound.Key)
		}
	})

	t.Run("summaries_most_recent_first", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryPageRepository()
		base := time.Now().UTC()
		for i, slug := range []string{"first", "second", "third"} {
			page := &Page{
				ID:        uuid.New(),
				Slug:      slug,
				Status:    StatusPublished,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			}
			if _, err := repo.Create(ctx, page); err != nil {
				t.Fatalf("create %s: %v", slug, err)
			}
		}

		summaries, err := repo.ListSummaries(ctx, 2)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(summaries) != 2 {
			t.Fatalf("expected 2 summaries got %d", len(summaries))
		}
		if summaries[0].Slug != "third" || summaries[1].Slug != "second" {
			t.Fatalf("unexpected order: %q %q", summaries[0].Slug, summaries[1].Slug)
		}
	})

	t.Run("clone_isolation", func(t *testing.T) {
		t.Parallel()
		repo := NewMemoryPageRepository()
		original := &Page{
			Slug:     "iso",
			Status:   StatusPublished,
			Contents: []*PageContent{{Language: "zh", Title: "原始"}},
		}
		if _, err := repo.Create(ctx, original); err != nil {
			t.Fatalf("create: %v", err)
		}

		fetched, err := repo.GetPublishedBySlug(ctx, "iso")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		fetched.Contents[0].Title = "mutated"

		again, err := repo.GetPublishedBySlug(ctx, "iso")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if again.Contents[0].Title != "原始" {
			t.Fatalf("stored record mutated: %q", again.Contents[0].Title)
		}
	})
}

func TestNormalizeSlug(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "valid_passthrough", in: "about-us", want: "about-us"},
		{name: "trim", in: "  about  ", want: "about"},
		{name: "empty", in: "", want: ""},
		{name: "uppercase_normalized", in: "About Us", want: "about-us"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeSlug(tc.in); got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}
