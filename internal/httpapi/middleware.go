package httpapi

import (
	"net/http"

	"github.com/goliatone/go-sitekit/internal/logging"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// withRequestID tags every request with an identifier, echoes it back in the
// response headers, and threads it through the logging context.
func (api *SiteAPI) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := logging.ContextWithFields(r.Context(), map[string]any{
			"request_id": requestID,
		})
		api.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", requestID,
		)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
