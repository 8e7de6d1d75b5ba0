package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/goliatone/go-sitekit/internal/components"
	"github.com/goliatone/go-sitekit/internal/i18n"
)

// Block is one rendered unit of page output, produced per top-level node.
type Block struct {
	ID   string        `json:"id"`
	Kind string        `json:"kind"`
	HTML template.HTML `json:"html"`
}

// Renderer walks a decoded node tree and produces rendered blocks. Rendering
// is a pure function of (nodes, language): no I/O, no hidden state, so the
// same tree always yields the same output sequence.
type Renderer struct {
	markdown goldmark.Markdown
}

// NewRenderer constructs a renderer with the default markdown engine.
func NewRenderer() *Renderer {
	return &Renderer{
		markdown: goldmark.New(
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
		),
	}
}

// Render produces one block per recognized node, preserving node order.
// Unknown node types render nothing; they are skipped without error so
// content authored by newer tooling passes through silently.
func (r *Renderer) Render(nodes []components.Node, lang i18n.Language) []Block {
	if len(nodes) == 0 {
		return nil
	}

	blocks := make([]Block, 0, len(nodes))
	for _, node := range nodes {
		var html template.HTML
		switch node.Type {
		case components.NodeText:
			html = r.renderText(node)
		case components.NodeCard:
			html = r.renderCard(node)
		case components.NodeGrid:
			html = r.renderGrid(node, lang)
		case components.NodeHero:
			html = r.renderHero(node)
		default:
			continue
		}
		blocks = append(blocks, Block{
			ID:   node.ID,
			Kind: string(node.Type),
			HTML: html,
		})
	}
	return blocks
}

// EmptyPlaceholder renders the localized shell shown when a page has no
// decodable content.
func (r *Renderer) EmptyPlaceholder(lang i18n.Language) Block {
	return Block{
		Kind: "empty",
		HTML: template.HTML(fmt.Sprintf(
			`<div class="page-empty"><p>%s</p></div>`,
			esc(i18n.Caption(lang, i18n.CaptionEmptyPage)),
		)),
	}
}

func (r *Renderer) renderText(node components.Node) template.HTML {
	data := node.TextData()

	var b strings.Builder
	b.WriteString(`<section class="block block-text">`)
	if data.Title != "" {
		fmt.Fprintf(&b, `<h2 style="font-size:%s;color:%s">%s</h2>`,
			esc(data.FontSize), esc(data.Color), esc(data.Title))
	}
	if data.Content != "" {
		if data.Format == components.TextFormatMarkdown {
			b.WriteString(`<div class="block-text-body">`)
			b.WriteString(r.convertMarkdown(data.Content))
			b.WriteString(`</div>`)
		} else {
			fmt.Fprintf(&b, `<p style="font-size:%s;white-space:pre-wrap">%s</p>`,
				esc(data.ContentSize), esc(data.Content))
		}
	}
	b.WriteString(`</section>`)
	return template.HTML(b.String())
}

func (r *Renderer) renderCard(node components.Node) template.HTML {
	data := node.CardData()

	var b strings.Builder
	b.WriteString(`<article class="block block-card">`)
	if data.Image != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s" style="height:%s">`,
			esc(data.Image), esc(data.Title), esc(data.ImageHeight))
	}
	fmt.Fprintf(&b, `<h3>%s</h3>`, esc(data.Title))
	fmt.Fprintf(&b, `<p>%s</p>`, esc(data.Description))
	b.WriteString(`</article>`)
	return template.HTML(b.String())
}

func (r *Renderer) renderGrid(node components.Node, lang i18n.Language) template.HTML {
	data := node.GridData()

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="block block-grid" data-columns="%d">`, data.Columns)
	// Exactly Columns cells: short item lists pad with a localized
	// placeholder, extra items are ignored.
	for i := 0; i < data.Columns; i++ {
		var cell components.Cell
		if i < len(data.Items) {
			cell = data.Items[i]
		}
		b.WriteString(r.renderCell(cell, lang))
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

func (r *Renderer) renderCell(cell components.Cell, lang i18n.Language) string {
	if len(cell.Components) == 0 {
		return fmt.Sprintf(`<div class="grid-cell grid-cell-empty"><span>%s</span></div>`,
			esc(i18n.Caption(lang, i18n.CaptionNoContent)))
	}

	var b strings.Builder
	b.WriteString(`<div class="grid-cell">`)
	for _, sub := range cell.Components {
		switch sub.Type {
		case components.SubNodeImage:
			b.WriteString(r.renderImage(sub, lang))
		case components.SubNodeText:
			b.WriteString(r.renderSubText(sub))
		case components.SubNodeButton:
			b.WriteString(r.renderButton(sub, lang))
		}
	}
	b.WriteString(`</div>`)
	return b.String()
}

func (r *Renderer) renderImage(node components.SubNode, lang i18n.Language) string {
	data := node.ImageData()
	if data.Src == "" {
		return fmt.Sprintf(`<div class="image-placeholder"><span>%s</span></div>`,
			esc(i18n.Caption(lang, i18n.CaptionLoadingImage)))
	}
	alt := data.Alt
	if alt == "" {
		alt = i18n.Caption(lang, i18n.CaptionImageAlt)
	}
	return fmt.Sprintf(`<img src="%s" alt="%s" style="width:%s;height:%s">`,
		esc(data.Src), esc(alt), esc(data.Width), esc(data.Height))
}

func (r *Renderer) renderSubText(node components.SubNode) string {
	data := node.SubTextData()
	return fmt.Sprintf(
		`<div class="cell-text" style="font-size:%s;color:%s;text-align:%s;font-weight:%s;white-space:pre-wrap">%s</div>`,
		esc(data.FontSize), esc(data.Color), esc(data.TextAlign), esc(data.FontWeight), esc(data.Content))
}

func (r *Renderer) renderButton(node components.SubNode, lang i18n.Language) string {
	data := node.ButtonData()

	text := data.Text
	if text == "" {
		text = i18n.Caption(lang, i18n.CaptionButtonText)
	}
	class := "btn"
	switch data.Style {
	case "primary":
		class = "btn btn-primary"
	case "secondary":
		class = "btn btn-secondary"
	}

	if data.Link != "" {
		return fmt.Sprintf(`<a class="%s" href="%s">%s</a>`, class, esc(data.Link), esc(text))
	}
	return fmt.Sprintf(`<button class="%s">%s</button>`, class, esc(text))
}

func (r *Renderer) renderHero(node components.Node) template.HTML {
	data := node.HeroData()

	var b strings.Builder
	background := "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	if data.BackgroundImage != "" {
		background = fmt.Sprintf("linear-gradient(rgba(0,0,0,0.5), rgba(0,0,0,0.5)), url(%s)", data.BackgroundImage)
	}
	fmt.Fprintf(&b, `<section class="block block-hero" style="background:%s;min-height:%s">`,
		esc(background), esc(data.Height))
	fmt.Fprintf(&b, `<h1 style="font-size:%s">%s</h1>`, esc(data.TitleSize), esc(data.Title))
	if data.Subtitle != "" {
		fmt.Fprintf(&b, `<p style="font-size:%s">%s</p>`, esc(data.SubtitleSize), esc(data.Subtitle))
	}
	if data.ButtonText != "" {
		fmt.Fprintf(&b, `<button class="hero-button">%s</button>`, esc(data.ButtonText))
	}
	b.WriteString(`</section>`)
	return template.HTML(b.String())
}

func (r *Renderer) convertMarkdown(source string) string {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &buf); err != nil {
		// Conversion failures degrade to escaped plain text.
		return fmt.Sprintf(`<p style="white-space:pre-wrap">%s</p>`, esc(source))
	}
	return buf.String()
}

func esc(value string) string {
	return template.HTMLEscapeString(value)
}
