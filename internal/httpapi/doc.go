// Package httpapi provides the public HTTP surface for the site.
//
// Routes mount under the configured base path (default /api):
//   - Pages: /pages/{slug}, /pages/{slug}/rendered
//   - Menus: /menus
//   - Language preference: /language (PUT)
//
// The root path / serves the rendered home view. Host applications can
// register handlers on their own mux via Routes, or use Handler for a mux
// wrapped with request-id middleware.
package httpapi
