package httpapi

import (
	"net/http"

	"github.com/goliatone/go-sitekit/internal/i18n"
)

type languagePayload struct {
	Language string `json:"language"`
}

// handleLanguageSet persists the caller's language preference in the session
// cookie so subsequent requests resolve it without a "lang" query parameter.
func (api *SiteAPI) handleLanguageSet(w http.ResponseWriter, r *http.Request) {
	if api == nil {
		writeJSON(w, http.StatusServiceUnavailable, failureResponse{Message: "service unavailable"})
		return
	}

	var payload languagePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, failureResponse{
			Message: "invalid request body",
			Error:   err.Error(),
		})
		return
	}

	lang, ok := i18n.Parse(payload.Language)
	if !ok {
		writeJSON(w, http.StatusBadRequest, failureResponse{
			Message: "unsupported language",
			Error:   "language must be one of: zh, en",
		})
		return
	}

	session, err := api.store.Get(r, api.sessionName)
	if err != nil {
		// A stale or tampered cookie still yields a fresh session; only a
		// store-level failure leaves session nil.
		if session == nil {
			writeJSON(w, http.StatusInternalServerError, failureResponse{
				Message: "session unavailable",
				Error:   err.Error(),
			})
			return
		}
	}
	session.Values[languageSessionKey] = lang.String()
	if err := session.Save(r, w); err != nil {
		api.logger.Error("language preference save failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, failureResponse{
			Message: "failed to persist language preference",
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: languagePayload{Language: lang.String()}})
}
