package logging

import (
	"context"

	"github.com/goliatone/go-sitekit/pkg/interfaces"
)

const (
	rootModule       = "sitekit"
	pagesModule      = "sitekit.pages"
	menusModule      = "sitekit.menus"
	componentsModule = "sitekit.components"
	renderModule     = "sitekit.render"
	viewModule       = "sitekit.view"
	httpModule       = "sitekit.http"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// PagesLogger returns the logger namespace reserved for page repositories.
func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

// MenusLogger returns the logger namespace reserved for menu repositories.
func MenusLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, menusModule)
}

// ComponentsLogger returns the logger namespace reserved for the tree decoder.
func ComponentsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, componentsModule)
}

// RenderLogger returns the logger namespace reserved for the renderer.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// ViewLogger returns the logger namespace reserved for page view composition.
func ViewLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, viewModule)
}

// HTTPLogger returns the logger namespace reserved for the HTTP surface.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
