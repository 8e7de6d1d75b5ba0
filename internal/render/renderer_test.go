package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-sitekit/internal/components"
	"github.com/goliatone/go-sitekit/internal/i18n"
)

func node(t *testing.T, id string, kind components.NodeType, data string) components.Node {
	t.Helper()
	return components.Node{ID: id, Type: kind, Data: json.RawMessage(data)}
}

func TestRenderPreservesOrderAndSkipsUnknown(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	nodes := []components.Node{
		node(t, "h", components.NodeHero, `{"title":"Hi"}`),
		node(t, "v", components.NodeType("video"), `{"url":"x"}`),
		node(t, "t", components.NodeText, `{"content":"body"}`),
	}

	blocks := r.Render(nodes, i18n.LanguageEN)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks got %d", len(blocks))
	}
	if blocks[0].ID != "h" || blocks[0].Kind != "hero" {
		t.Fatalf("unexpected first block: %+v", blocks[0])
	}
	if blocks[1].ID != "t" || blocks[1].Kind != "text" {
		t.Fatalf("unexpected second block: %+v", blocks[1])
	}
}

func TestRenderGridPadsToColumnCount(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	grid := node(t, "g", components.NodeGrid,
		`{"items":[{"components":[{"id":"s","type":"text","data":{"content":"only"}}]}]}`)

	blocks := r.Render([]components.Node{grid}, i18n.LanguageZH)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block got %d", len(blocks))
	}

	html := string(blocks[0].HTML)
	if !strings.Contains(html, `data-columns="3"`) {
		t.Fatalf("expected default column count in %q", html)
	}
	if got := strings.Count(html, `class="grid-cell`); got != 3 {
		t.Fatalf("expected 3 cells got %d in %q", got, html)
	}
	if got := strings.Count(html, "grid-cell-empty"); got != 2 {
		t.Fatalf("expected 2 empty cells got %d in %q", got, html)
	}
	if !strings.Contains(html, "暂无内容") {
		t.Fatalf("expected localized placeholder in %q", html)
	}
}

func TestRenderGridIgnoresExtraItems(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	grid := node(t, "g", components.NodeGrid,
		`{"columns":1,"items":[`+
			`{"components":[{"id":"a","type":"text","data":{"content":"kept"}}]},`+
			`{"components":[{"id":"b","type":"text","data":{"content":"dropped"}}]}`+
			`]}`)

	html := string(r.Render([]components.Node{grid}, i18n.LanguageEN)[0].HTML)
	if !strings.Contains(html, "kept") {
		t.Fatalf("expected first item in %q", html)
	}
	if strings.Contains(html, "dropped") {
		t.Fatalf("expected extra item ignored in %q", html)
	}
}

func TestRenderTextMarkdown(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	t.Run("markdown_format", func(t *testing.T) {
		t.Parallel()
		text := node(t, "t", components.NodeText,
			`{"content":"# Heading\n\nsome *emphasis*","format":"markdown"}`)
		html := string(r.Render([]components.Node{text}, i18n.LanguageEN)[0].HTML)
		if !strings.Contains(html, "<h1") || !strings.Contains(html, "<em>emphasis</em>") {
			t.Fatalf("expected converted markdown in %q", html)
		}
	})

	t.Run("plain_text_escaped", func(t *testing.T) {
		t.Parallel()
		text := node(t, "t", components.NodeText, `{"content":"<script>alert(1)</script>"}`)
		html := string(r.Render([]components.Node{text}, i18n.LanguageEN)[0].HTML)
		if strings.Contains(html, "<script>") {
			t.Fatalf("expected escaped markup in %q", html)
		}
	})

	t.Run("default_styles", func(t *testing.T) {
		t.Parallel()
		text := node(t, "t", components.NodeText, `{"title":"T","content":"b"}`)
		html := string(r.Render([]components.Node{text}, i18n.LanguageEN)[0].HTML)
		if !strings.Contains(html, "font-size:24px") || !strings.Contains(html, "color:#333") {
			t.Fatalf("expected default title styles in %q", html)
		}
		if !strings.Contains(html, "font-size:16px") {
			t.Fatalf("expected default body size in %q", html)
		}
	})
}

func TestRenderHero(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	t.Run("gradient_default", func(t *testing.T) {
		t.Parallel()
		hero := node(t, "h", components.NodeHero, `{"title":"Hi","subtitle":"Sub","buttonText":"Go"}`)
		html := string(r.Render([]components.Node{hero}, i18n.LanguageEN)[0].HTML)
		if !strings.Contains(html, "linear-gradient(135deg, #667eea 0%, #764ba2 100%)") {
			t.Fatalf("expected gradient background in %q", html)
		}
		if !strings.Contains(html, "min-height:400px") || !strings.Contains(html, "font-size:48px") {
			t.Fatalf("expected default sizing in %q", html)
		}
		if !strings.Contains(html, `<button class="hero-button">Go</button>`) {
			t.Fatalf("expected hero button in %q", html)
		}
	})

	t.Run("background_image_overlay", func(t *testing.T) {
		t.Parallel()
		hero := node(t, "h", components.NodeHero, `{"title":"Hi","backgroundImage":"/bg.png"}`)
		html := string(r.Render([]components.Node{hero}, i18n.LanguageEN)[0].HTML)
		if !strings.Contains(html, "url(/bg.png)") {
			t.Fatalf("expected background image in %q", html)
		}
	})
}

func TestRenderSubComponents(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	grid := func(sub string) components.Node {
		return node(t, "g", components.NodeGrid,
			`{"columns":1,"items":[{"components":[`+sub+`]}]}`)
	}

	t.Run("image_without_src", func(t *testing.T) {
		t.Parallel()
		html := string(r.Render([]components.Node{grid(`{"id":"i","type":"image","data":{}}`)}, i18n.LanguageZH)[0].HTML)
		if !strings.Contains(html, "image-placeholder") || !strings.Contains(html, "图片加载中...") {
			t.Fatalf("expected loading placeholder in %q", html)
		}
	})

	t.Run("image_default_alt", func(t *testing.T) {
		t.Parallel()
		html := string(r.Render([]components.Node{grid(`{"id":"i","type":"image","data":{"src":"/a.png"}}`)}, i18n.LanguageEN)[0].HTML)
		if !strings.Contains(html, `alt="Image"`) {
			t.Fatalf("expected default alt in %q", html)
		}
		if !strings.Contains(html, "width:100%;height:auto") {
			t.Fatalf("expected default dimensions in %q", html)
		}
	})

	t.Run("button_defaults", func(t *testing.T) {
		t.Parallel()
		html := string(r.Render([]components.Node{grid(`{"id":"b","type":"button","data":{}}`)}, i18n.LanguageZH)[0].HTML)
		if !strings.Contains(html, ">按钮文字</button>") {
			t.Fatalf("expected localized default text in %q", html)
		}
	})

	t.Run("button_link_becomes_anchor", func(t *testing.T) {
		t.Parallel()
		html := string(r.Render([]components.Node{grid(`{"id":"b","type":"button","data":{"text":"Go","link":"/x","style":"primary"}}`)}, i18n.LanguageEN)[0].HTML)
		if !strings.Contains(html, `<a class="btn btn-primary" href="/x">Go</a>`) {
			t.Fatalf("expected anchor in %q", html)
		}
	})

	t.Run("sub_text_defaults", func(t *testing.T) {
		t.Parallel()
		html := string(r.Render([]components.Node{grid(`{"id":"t","type":"text","data":{"content":"c"}}`)}, i18n.LanguageEN)[0].HTML)
		if !strings.Contains(html, "font-size:14px") || !strings.Contains(html, "text-align:left") || !strings.Contains(html, "font-weight:normal") {
			t.Fatalf("expected sub text defaults in %q", html)
		}
	})
}

func TestEmptyPlaceholder(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	zh := r.EmptyPlaceholder(i18n.LanguageZH)
	if !strings.Contains(string(zh.HTML), "页面内容为空") {
		t.Fatalf("expected zh placeholder got %q", zh.HTML)
	}
	en := r.EmptyPlaceholder(i18n.LanguageEN)
	if !strings.Contains(string(en.HTML), "Page content is empty") {
		t.Fatalf("expected en placeholder got %q", en.HTML)
	}
	if zh.Kind != "empty" || en.Kind != "empty" {
		t.Fatalf("expected empty kind got %q %q", zh.Kind, en.Kind)
	}
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	nodes := []components.Node{
		node(t, "h", components.NodeHero, `{"title":"Hi"}`),
		node(t, "g", components.NodeGrid, `{"items":[{"components":[{"id":"s","type":"text","data":{"content":"x"}}]}]}`),
	}

	first := r.Render(nodes, i18n.LanguageZH)
	second := r.Render(nodes, i18n.LanguageZH)
	if len(first) != len(second) {
		t.Fatalf("block counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("block %d differs between runs", i)
		}
	}
}
