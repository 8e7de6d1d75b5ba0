package httpapi

import (
	"net/http"

	"github.com/goliatone/go-sitekit/internal/i18n"
	"github.com/goliatone/go-sitekit/internal/menus"
)

func (api *SiteAPI) handleMenuList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.menus == nil {
		writeJSON(w, http.StatusServiceUnavailable, failureResponse{Message: "service unavailable"})
		return
	}
	lang := api.languageFor(r)

	rows, err := api.menus.ListVisible(r.Context())
	if err != nil {
		api.logger.Error("menu listing failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, failureResponse{
			Message: i18n.Caption(lang, i18n.CaptionMenuLoadFailed),
			Error:   err.Error(),
		})
		return
	}

	forest := menus.BuildForest(rows)
	if forest == nil {
		forest = []*menus.MenuNode{}
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: forest})
}
