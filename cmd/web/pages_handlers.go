package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"axiomai.dev/marketplace-web/internal/cms"
	mw "axiomai.dev/marketplace-web/internal/middleware"
	"axiomai.dev/marketplace-web/internal/nav"
	"axiomai.dev/marketplace-web/internal/observability"
)

// ContentPageHandler renders a CMS page such as the FAQ, terms, or privacy policy.
func (s *server) ContentPageHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	slug := chi.URLParam(r, "slug")
	page, err := s.cms.GetContentPage(r.Context(), "pages", slug, lang)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			s.NotFoundHandler(w, r)
			return
		}
		observability.FromContext(r.Context()).Error("load content page", zap.String("slug", slug), zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	title := page.Title
	desc := page.Summary
	vm := s.pageData(r, title, desc)
	if page.SEO.Title != "" {
		vm.SEO.Title = page.SEO.Title
		vm.SEO.OG.Title = page.SEO.Title
	}
	if page.SEO.Description != "" {
		vm.SEO.Description = page.SEO.Description
		vm.SEO.OG.Description = page.SEO.Description
	}
	if page.SEO.OGImage != "" {
		vm.SEO.OG.Image = page.SEO.OGImage
	}
	vm.Content = page
	vm.Breadcrumbs = nav.WithLastLabel(vm.Breadcrumbs, page.Title)
	vm.SEO.AddJSONLD(s.breadcrumbJSONLD(r, lang, vm.Breadcrumbs))

	s.renderPage(w, r, "page", vm)
}

// NotFoundHandler renders the 404 page, or a JSON error for htmx requests.
func (s *server) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	if mw.IsHTMX(r.Context()) {
		mw.WriteError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}
	lang := mw.Lang(r)
	vm := s.pageData(r,
		s.i18nOrDefault(lang, "page.not_found.title", "Page not found"),
		s.i18nOrDefault(lang, "page.not_found.body", "We couldn't find what you were looking for."),
	)
	vm.NotFound = true
	vm.SEO.Robots = "noindex"
	s.renderPageStatus(w, r, http.StatusNotFound, "not_found", vm)
}
