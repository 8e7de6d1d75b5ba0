package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/goliatone/go-sitekit/internal/pages"
)

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type failureResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Error   string         `json:"error,omitempty"`
	Debug   *notFoundDebug `json:"debug,omitempty"`
}

// notFoundDebug accompanies 404 responses so callers can see which slugs the
// site actually serves.
type notFoundDebug struct {
	RequestedSlug  string              `json:"requested_slug"`
	AvailablePages []pages.PageSummary `json:"available_pages"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.TrimSpace(base)
	trimmedSuffix := strings.TrimSpace(suffix)
	if trimmedBase == "" {
		if trimmedSuffix == "" {
			return "/"
		}
		return "/" + strings.Trim(trimmedSuffix, "/")
	}
	baseClean := "/" + strings.Trim(trimmedBase, "/")
	if trimmedSuffix == "" {
		return baseClean
	}
	return baseClean + "/" + strings.Trim(trimmedSuffix, "/")
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}
