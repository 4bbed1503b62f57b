package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"axiomai.dev/marketplace-web/internal/catalog"
	mw "axiomai.dev/marketplace-web/internal/middleware"
	"axiomai.dev/marketplace-web/internal/nav"
	"axiomai.dev/marketplace-web/internal/observability"
	"axiomai.dev/marketplace-web/internal/seo"
)

// MarketplaceHandler renders the listing page for the category, q and sort parameters.
func (s *server) MarketplaceHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	view := buildMarketplaceView(lang, s.content, r.URL.Query())
	logUnknownCategory(r, view)

	vm := s.pageData(r, view.Copy.Title, view.Copy.Subtitle)
	vm.Marketplace = view
	// filtered variants share the canonical listing page
	vm.SEO.Canonical = s.absoluteURL(r, "/marketplace")
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.AddJSONLD(s.itemListJSONLD(r, view.Copy.Title, view.Cards))

	s.renderPage(w, r, "marketplace", vm)
}

// MarketplaceResultsFrag renders the summary and cards for htmx swaps and pushes the filter URL.
func (s *server) MarketplaceResultsFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	view := buildMarketplaceView(lang, s.content, r.URL.Query())
	logUnknownCategory(r, view)
	w.Header().Set("HX-Push-Url", marketplaceHref(view.State))
	s.renderTemplate(w, r, "frag_marketplace_results", view)
}

func logUnknownCategory(r *http.Request, view MarketplaceView) {
	if view.UnknownCategory {
		observability.FromContext(r.Context()).Warn("unknown marketplace category", zap.String("category", view.State.Category))
	}
}

// AgentDetailHandler renders a single listing.
func (s *server) AgentDetailHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.NotFoundHandler(w, r)
		return
	}
	listing, ok := s.content.Catalog.Listing(id)
	if !ok {
		s.NotFoundHandler(w, r)
		return
	}
	card := agentCard(listing)

	vm := s.pageData(r, listing.Name, listing.Description)
	vm.Listing = card
	vm.Breadcrumbs = nav.WithLastLabel(vm.Breadcrumbs, listing.Name)
	vm.SEO.AddJSONLD(s.productJSONLD(r, listing))
	vm.SEO.AddJSONLD(s.breadcrumbJSONLD(r, vm.Lang, vm.Breadcrumbs))

	s.renderPage(w, r, "agent", vm)
}

func (s *server) productJSONLD(r *http.Request, l catalog.Listing) seo.Node {
	in := seo.ProductInput{
		Name:        l.Name,
		Description: l.Description,
		URL:         s.absoluteURL(r, agentHref(l.ID)),
		SKU:         strconv.Itoa(l.ID),
		Category:    l.Category,
		Price:       l.Price,
		Rating:      l.Rating,
	}
	if l.Image != "" {
		in.Image = s.absoluteURL(r, l.Image)
	}
	return seo.Product(in)
}

func (s *server) itemListJSONLD(r *http.Request, name string, cards []AgentCard) seo.Node {
	items := make([]seo.Node, 0, len(cards))
	for _, c := range cards {
		l, ok := s.content.Catalog.Listing(c.ID)
		if !ok {
			continue
		}
		items = append(items, s.productJSONLD(r, l))
	}
	return seo.ItemList(name, items)
}

func (s *server) breadcrumbJSONLD(r *http.Request, lang string, crumbs []nav.Crumb) seo.Node {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		name := c.Label
		if c.LabelKey != "" {
			name = s.bundle.T(lang, c.LabelKey)
		}
		items = append(items, seo.BreadcrumbItem{Name: name, Item: s.absoluteURL(r, c.Href)})
	}
	return seo.BreadcrumbList(items)
}
