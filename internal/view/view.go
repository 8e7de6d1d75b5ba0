package view

import (
	"context"
	"errors"

	"github.com/goliatone/go-sitekit/internal/components"
	"github.com/goliatone/go-sitekit/internal/i18n"
	"github.com/goliatone/go-sitekit/internal/logging"
	"github.com/goliatone/go-sitekit/internal/pages"
	"github.com/goliatone/go-sitekit/internal/render"
	"github.com/goliatone/go-sitekit/pkg/interfaces"
)

// Status tracks the lifecycle of a page view.
type Status string

const (
	StatusLoading  Status = "loading"
	StatusLoaded   Status = "loaded"
	StatusNotFound Status = "not_found"
	StatusError    Status = "error"
)

// HomeSlug and HomeFallbackSlug drive the default view lookup: the home view
// tries HomeSlug first and falls back to HomeFallbackSlug.
const (
	HomeSlug         = "home"
	HomeFallbackSlug = "index"
)

// PageView is one view's immutable snapshot of a fetched page plus its
// rendered output for the active language. Views share no mutable state:
// concurrent requests each own their snapshot.
type PageView struct {
	controller *Controller
	status     Status
	page       *pages.Page
	language   i18n.Language
	localized  pages.LocalizedPage
	nodes      []components.Node
	blocks     []render.Block
	err        error
}

// Controller orchestrates repository access, localized resolution, decoding,
// and rendering for page views.
type Controller struct {
	repo     pages.PageRepository
	decoder  *components.Decoder
	renderer *render.Renderer
	logger   interfaces.Logger
}

// NewController wires the composition layer. The logger receives decode
// failures and repository errors.
func NewController(repo pages.PageRepository, logger interfaces.Logger) *Controller {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Controller{
		repo:     repo,
		decoder:  components.NewDecoder(logger),
		renderer: render.NewRenderer(),
		logger:   logger,
	}
}

// Load fetches the slug and produces a view in one of the terminal states:
// Loaded, NotFound, or Error.
func (c *Controller) Load(ctx context.Context, slug string, lang i18n.Language) *PageView {
	v := &PageView{controller: c, status: StatusLoading, language: lang}

	page, err := c.repo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pages.ErrPageNotFound) {
			v.status = StatusNotFound
			v.err = err
			return v
		}
		c.logger.Error("page fetch failed", "slug", slug, "error", err)
		v.status = StatusError
		v.err = err
		return v
	}

	v.page = page
	v.recompute(lang)
	return v
}

// LoadHome resolves the default view: slug "home", falling back to "index".
// The home view never surfaces an error page; when both slugs are missing or
// the repository fails it renders built-in placeholder content instead.
func (c *Controller) LoadHome(ctx context.Context, lang i18n.Language) *PageView {
	v := c.Load(ctx, HomeSlug, lang)
	if v.status == StatusNotFound {
		v = c.Load(ctx, HomeFallbackSlug, lang)
	}
	if v.status == StatusLoaded {
		return v
	}

	c.logger.Warn("home view falling back to default content", "status", string(v.status))
	fallback := &PageView{controller: c, status: StatusLoaded, language: lang}
	fallback.nodes = DefaultContent(lang)
	fallback.blocks = c.renderer.Render(fallback.nodes, lang)
	return fallback
}

// SetLanguage switches the active display language and re-runs resolution,
// decoding, and rendering against the already-fetched snapshot. The
// repository is not consulted again.
func (v *PageView) SetLanguage(lang i18n.Language) {
	if v == nil || v.status != StatusLoaded {
		return
	}
	if v.page == nil {
		// Default-content views re-render their built-in nodes.
		v.language = lang
		v.nodes = DefaultContent(lang)
		v.blocks = v.controller.renderer.Render(v.nodes, lang)
		return
	}
	v.recompute(lang)
}

// recompute rebuilds the localized projection, node tree, and blocks for the
// language. The node tree is rebuilt from the stored payload, never mutated.
func (v *PageView) recompute(lang i18n.Language) {
	c := v.controller
	v.status = StatusLoaded
	v.language = lang
	v.localized = pages.Resolve(v.page, lang)
	v.nodes = c.decoder.Decode(v.localized.RawContent)
	if len(v.nodes) == 0 {
		v.blocks = []render.Block{c.renderer.EmptyPlaceholder(lang)}
		return
	}
	v.blocks = c.renderer.Render(v.nodes, lang)
}

// Status reports the view state.
func (v *PageView) Status() Status { return v.status }

// Page returns the fetched record, nil for default-content and failed views.
func (v *PageView) Page() *pages.Page { return v.page }

// Language returns the active display language.
func (v *PageView) Language() i18n.Language { return v.language }

// Title returns the localized page title.
func (v *PageView) Title() string { return v.localized.Title }

// Excerpt returns the localized page excerpt.
func (v *PageView) Excerpt() string { return v.localized.Excerpt }

// Localized returns the full localized projection, including SEO fields.
func (v *PageView) Localized() pages.LocalizedPage { return v.localized }

// Nodes returns the decoded component tree for the active language.
func (v *PageView) Nodes() []components.Node { return v.nodes }

// Blocks returns the rendered output sequence.
func (v *PageView) Blocks() []render.Block { return v.blocks }

// Err returns the failure behind a NotFound or Error state.
func (v *PageView) Err() error { return v.err }
