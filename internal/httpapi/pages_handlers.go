package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/goliatone/go-sitekit/internal/i18n"
	"github.com/goliatone/go-sitekit/internal/pages"
	"github.com/goliatone/go-sitekit/internal/render"
	"github.com/goliatone/go-sitekit/internal/view"
)

type renderedPagePayload struct {
	Slug           string         `json:"slug,omitempty"`
	Language       string         `json:"language"`
	Title          string         `json:"title"`
	Excerpt        string         `json:"excerpt,omitempty"`
	SEOTitle       string         `json:"seo_title,omitempty"`
	SEODescription string         `json:"seo_description,omitempty"`
	SEOKeywords    string         `json:"seo_keywords,omitempty"`
	Blocks         []render.Block `json:"blocks"`
}

func (api *SiteAPI) handlePageGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, failureResponse{Message: "service unavailable"})
		return
	}
	slug := r.PathValue("slug")
	lang := api.languageFor(r)

	page, err := api.pages.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, pages.ErrPageNotFound) {
			api.writePageNotFound(r.Context(), w, lang, slug)
			return
		}
		api.logger.Error("page lookup failed", "slug", slug, "error", err)
		writeJSON(w, http.StatusInternalServerError, failureResponse{
			Message: i18n.Caption(lang, i18n.CaptionPageLoadFailed),
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: page})
}

func (api *SiteAPI) handlePageRendered(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.views == nil {
		writeJSON(w, http.StatusServiceUnavailable, failureResponse{Message: "service unavailable"})
		return
	}
	slug := r.PathValue("slug")
	lang := api.languageFor(r)

	v := api.views.Load(r.Context(), slug, lang)
	switch v.Status() {
	case view.StatusNotFound:
		api.writePageNotFound(r.Context(), w, lang, slug)
	case view.StatusError:
		writeJSON(w, http.StatusInternalServerError, failureResponse{
			Message: i18n.Caption(lang, i18n.CaptionPageLoadFailed),
			Error:   v.Err().Error(),
		})
	default:
		writeJSON(w, http.StatusOK, successResponse{Success: true, Data: renderedPayload(slug, v)})
	}
}

func (api *SiteAPI) handleHome(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.views == nil {
		writeJSON(w, http.StatusServiceUnavailable, failureResponse{Message: "service unavailable"})
		return
	}
	lang := api.languageFor(r)

	v := api.views.LoadHome(r.Context(), lang)
	slug := ""
	if v.Page() != nil {
		slug = v.Page().Slug
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: renderedPayload(slug, v)})
}

func (api *SiteAPI) writePageNotFound(ctx context.Context, w http.ResponseWriter, lang i18n.Language, slug string) {
	summaries, err := api.pages.ListSummaries(ctx, api.debugPages)
	if err != nil {
		api.logger.Warn("page summary listing failed", "error", err)
	}
	if summaries == nil {
		summaries = []pages.PageSummary{}
	}
	writeJSON(w, http.StatusNotFound, failureResponse{
		Message: i18n.Caption(lang, i18n.CaptionPageNotFound),
		Debug: &notFoundDebug{
			RequestedSlug:  slug,
			AvailablePages: summaries,
		},
	})
}

func renderedPayload(slug string, v *view.PageView) renderedPagePayload {
	localized := v.Localized()
	blocks := v.Blocks()
	if blocks == nil {
		blocks = []render.Block{}
	}
	return renderedPagePayload{
		Slug:           slug,
		Language:       v.Language().String(),
		Title:          v.Title(),
		Excerpt:        v.Excerpt(),
		SEOTitle:       localized.SEOTitle,
		SEODescription: localized.SEODescription,
		SEOKeywords:    localized.SEOKeywords,
		Blocks:         blocks,
	}
}
