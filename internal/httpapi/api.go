package httpapi

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-sitekit/internal/i18n"
	"github.com/goliatone/go-sitekit/internal/logging"
	"github.com/goliatone/go-sitekit/internal/menus"
	"github.com/goliatone/go-sitekit/internal/pages"
	"github.com/goliatone/go-sitekit/internal/view"
	"github.com/goliatone/go-sitekit/pkg/interfaces"
	"github.com/gorilla/sessions"
)

const languageSessionKey = "language"

// devSessionSecret keeps the cookie store functional when no secret is
// configured. Production deployments must supply their own via
// WithSessionSecret or WithSessionStore.
const devSessionSecret = "sitekit-insecure-dev-secret"

// SiteAPI registers the public site endpoints: page lookups, rendered views,
// the navigation forest, and the language preference switch.
type SiteAPI struct {
	basePath    string
	sessionName string
	store       sessions.Store
	pages       pages.PageRepository
	menus       menus.MenuRepository
	views       *view.Controller
	defaultLang i18n.Language
	debugPages  int
	logger      interfaces.Logger
}

// Option mutates the SiteAPI configuration.
type Option func(*SiteAPI)

// New constructs a SiteAPI instance.
func New(opts ...Option) *SiteAPI {
	api := &SiteAPI{
		basePath:    "/api",
		sessionName: "sitekit",
		defaultLang: i18n.DefaultLanguage,
		debugPages:  10,
		logger:      logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	if api.store == nil {
		api.store = sessions.NewCookieStore([]byte(devSessionSecret))
	}
	if api.views == nil && api.pages != nil {
		api.views = view.NewController(api.pages, api.logger)
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) Option {
	return func(api *SiteAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithSessionName overrides the session cookie name.
func WithSessionName(name string) Option {
	return func(api *SiteAPI) {
		if api == nil {
			return
		}
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			api.sessionName = trimmed
		}
	}
}

// WithSessionSecret builds the cookie store from the shared secret.
func WithSessionSecret(secret string) Option {
	return func(api *SiteAPI) {
		if api == nil || strings.TrimSpace(secret) == "" {
			return
		}
		api.store = sessions.NewCookieStore([]byte(secret))
	}
}

// WithSessionStore wires a fully configured session store.
func WithSessionStore(store sessions.Store) Option {
	return func(api *SiteAPI) {
		if api != nil && store != nil {
			api.store = store
		}
	}
}

// WithPageRepository wires the page lookup repository.
func WithPageRepository(repo pages.PageRepository) Option {
	return func(api *SiteAPI) {
		if api != nil {
			api.pages = repo
		}
	}
}

// WithMenuRepository wires the navigation repository.
func WithMenuRepository(repo menus.MenuRepository) Option {
	return func(api *SiteAPI) {
		if api != nil {
			api.menus = repo
		}
	}
}

// WithViewController wires a prebuilt view controller. When omitted one is
// derived from the page repository.
func WithViewController(views *view.Controller) Option {
	return func(api *SiteAPI) {
		if api != nil && views != nil {
			api.views = views
		}
	}
}

// WithDefaultLanguage sets the language used when neither the request nor the
// session carries a preference.
func WithDefaultLanguage(lang i18n.Language) Option {
	return func(api *SiteAPI) {
		if api != nil && lang.Valid() {
			api.defaultLang = lang
		}
	}
}

// WithDebugPageCount bounds the available_pages listing attached to 404
// responses.
func WithDebugPageCount(limit int) Option {
	return func(api *SiteAPI) {
		if api != nil && limit > 0 {
			api.debugPages = limit
		}
	}
}

// WithLogger wires the request logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *SiteAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Routes registers all site endpoints on the mux.
func (api *SiteAPI) Routes(mux *http.ServeMux) {
	if api == nil || mux == nil {
		return
	}
	pagesRoot := joinPath(api.basePath, "pages")
	mux.HandleFunc("GET "+pagesRoot+"/{slug}", api.handlePageGet)
	mux.HandleFunc("GET "+pagesRoot+"/{slug}/rendered", api.handlePageRendered)
	mux.HandleFunc("GET "+joinPath(api.basePath, "menus"), api.handleMenuList)
	mux.HandleFunc("PUT "+joinPath(api.basePath, "language"), api.handleLanguageSet)
	mux.HandleFunc("GET /{$}", api.handleHome)
}

// Handler returns the routed mux wrapped with request-id middleware.
func (api *SiteAPI) Handler() http.Handler {
	mux := http.NewServeMux()
	api.Routes(mux)
	return api.withRequestID(mux)
}

// languageFor resolves the display language for the request: explicit "lang"
// query first, then the session preference, then the configured default.
func (api *SiteAPI) languageFor(r *http.Request) i18n.Language {
	if lang, ok := i18n.Parse(r.URL.Query().Get("lang")); ok {
		return lang
	}
	if session, err := api.store.Get(r, api.sessionName); err == nil {
		if stored, ok := session.Values[languageSessionKey].(string); ok {
			if lang, ok := i18n.Parse(stored); ok {
				return lang
			}
		}
	}
	return api.defaultLang
}
