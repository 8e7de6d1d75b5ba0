// Package sitekit assembles a bilingual site front end: database-backed page
// and menu lookups, a component-tree decoder, and an HTML renderer with
// per-field language fallback, exposed over a small JSON API.
package sitekit

import (
	"context"

	"github.com/goliatone/go-sitekit/internal/components"
	"github.com/goliatone/go-sitekit/internal/httpapi"
	"github.com/goliatone/go-sitekit/internal/i18n"
	"github.com/goliatone/go-sitekit/internal/logging"
	"github.com/goliatone/go-sitekit/internal/logging/gologger"
	"github.com/goliatone/go-sitekit/internal/menus"
	"github.com/goliatone/go-sitekit/internal/pages"
	"github.com/goliatone/go-sitekit/internal/render"
	"github.com/goliatone/go-sitekit/internal/storage"
	"github.com/goliatone/go-sitekit/internal/view"
	"github.com/goliatone/go-sitekit/pkg/interfaces"
	"github.com/uptrace/bun"
)

// Language exports the display language type for consumers of the sitekit
// package. Supported values are LanguageZH and LanguageEN.
type Language = i18n.Language

// Supported display languages.
const (
	LanguageZH = i18n.LanguageZH
	LanguageEN = i18n.LanguageEN
)

// Page exports the page record model.
type Page = pages.Page

// PageContent exports the per-language content row.
type PageContent = pages.PageContent

// PageSummary exports the slug/status projection used in debug listings.
type PageSummary = pages.PageSummary

// LocalizedPage exports the per-field resolved projection of a page.
type LocalizedPage = pages.LocalizedPage

// PageRepository exports the page lookup contract.
type PageRepository = pages.PageRepository

// MenuItem exports the menu record model.
type MenuItem = menus.MenuItem

// MenuContent exports the per-language menu name row.
type MenuContent = menus.MenuContent

// MenuNode exports the navigation forest node.
type MenuNode = menus.MenuNode

// MenuRepository exports the menu lookup contract.
type MenuRepository = menus.MenuRepository

// Node exports a decoded component tree entry.
type Node = components.Node

// Block exports a rendered output block.
type Block = render.Block

// PageView exports the stateful view snapshot.
type PageView = view.PageView

// ViewController exports the view composition layer.
type ViewController = view.Controller

// Logger exports the logging contract accepted by the module.
type Logger = interfaces.Logger

// LoggerProvider exports the named-logger factory contract.
type LoggerProvider = interfaces.LoggerProvider

// Module is the top level sitekit runtime facade.
type Module struct {
	cfg      Config
	db       *bun.DB
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
	pages    pages.PageRepository
	menus    menus.MenuRepository
	views    *view.Controller
	api      *httpapi.SiteAPI
}

// Option overrides a dependency during module construction.
type Option func(*Module)

// WithDB wires an existing bun database instead of opening one from the
// storage configuration.
func WithDB(db *bun.DB) Option {
	return func(m *Module) {
		if m != nil && db != nil {
			m.db = db
		}
	}
}

// WithLoggerProvider wires a custom logger provider. When omitted and logging
// is enabled, a go-logger backed provider is built from the configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if m != nil && provider != nil {
			m.provider = provider
		}
	}
}

// WithPageRepository overrides the page repository, skipping database wiring
// for page lookups.
func WithPageRepository(repo pages.PageRepository) Option {
	return func(m *Module) {
		if m != nil && repo != nil {
			m.pages = repo
		}
	}
}

// WithMenuRepository overrides the menu repository.
func WithMenuRepository(repo menus.MenuRepository) Option {
	return func(m *Module) {
		if m != nil && repo != nil {
			m.menus = repo
		}
	}
}

// New constructs the sitekit module from the configuration plus optional
// dependency overrides. A database is opened only when a repository override
// does not already cover both lookup paths.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.provider == nil && cfg.Logging.Enabled {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}
	m.logger = logging.ModuleLogger(m.provider, "")

	if m.db == nil && (m.pages == nil || m.menus == nil) {
		db, err := storage.Open(cfg.Storage)
		if err != nil {
			return nil, err
		}
		m.db = db
	}
	if m.pages == nil {
		m.pages = pages.NewBunPageRepository(m.db)
	}
	if m.menus == nil {
		m.menus = menus.NewBunMenuRepository(m.db)
	}

	m.views = view.NewController(m.pages, logging.ViewLogger(m.provider))

	defaultLang := i18n.ParseOrDefault(cfg.DefaultLanguage, i18n.DefaultLanguage)
	m.api = httpapi.New(
		httpapi.WithBasePath(cfg.HTTP.BasePath),
		httpapi.WithSessionName(cfg.HTTP.SessionName),
		httpapi.WithSessionSecret(cfg.HTTP.SessionSecret),
		httpapi.WithPageRepository(m.pages),
		httpapi.WithMenuRepository(m.menus),
		httpapi.WithViewController(m.views),
		httpapi.WithDefaultLanguage(defaultLang),
		httpapi.WithDebugPageCount(cfg.HTTP.DebugPages),
		httpapi.WithLogger(logging.HTTPLogger(m.provider)),
	)

	return m, nil
}

// EnsureSchema creates the page and menu tables when they do not exist yet.
// It is a no-op for modules wired entirely from repository overrides.
func (m *Module) EnsureSchema(ctx context.Context) error {
	if m == nil || m.db == nil {
		return nil
	}
	return storage.EnsureSchema(ctx, m.db)
}

// Pages returns the configured page repository.
func (m *Module) Pages() PageRepository {
	return m.pages
}

// Menus returns the configured menu repository.
func (m *Module) Menus() MenuRepository {
	return m.menus
}

// Views returns the view composition layer.
func (m *Module) Views() *ViewController {
	return m.views
}

// HTTP returns the site API for route registration.
func (m *Module) HTTP() *httpapi.SiteAPI {
	return m.api
}

// DB exposes the underlying database for advanced integrations; nil when the
// module was wired from repository overrides.
func (m *Module) DB() *bun.DB {
	return m.db
}

// Logger returns the module level logger.
func (m *Module) Logger() Logger {
	return m.logger
}

// Close releases the database connection when the module owns one.
func (m *Module) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	return m.db.Close()
}
