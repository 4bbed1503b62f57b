package main

import (
	"net/http"
	"net/url"

	mw "axiomai.dev/marketplace-web/internal/middleware"
	"axiomai.dev/marketplace-web/internal/seo"
	"axiomai.dev/marketplace-web/internal/site"
)

// HomeView is the landing page: hero, default marketplace grid, and monthly pricing.
type HomeView struct {
	Hero        site.Hero
	Marketplace MarketplaceView
	Pricing     PricingView
}

// HomeHandler renders the landing page.
func (s *server) HomeHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	view := HomeView{
		Hero:        s.content.Hero,
		Marketplace: buildMarketplaceView(lang, s.content, url.Values{}),
		Pricing:     buildPricingView(lang, s.content, ""),
	}

	vm := s.pageData(r, s.siteName(lang), s.content.Hero.Subtitle)
	vm.Home = view
	vm.SEO.Canonical = s.absoluteURL(r, "/")
	vm.SEO.OG.URL = vm.SEO.Canonical
	if s.content.Hero.Image != "" {
		vm.SEO.OG.Image = s.absoluteURL(r, s.content.Hero.Image)
		vm.SEO.Twitter.Image = vm.SEO.OG.Image
	}
	base := s.baseURL(r)
	vm.SEO.AddJSONLD(seo.Organization(vm.SiteName, base, ""))
	vm.SEO.AddJSONLD(seo.WebSite(vm.SiteName, base, base+"/marketplace?q="))
	vm.SEO.AddJSONLD(s.itemListJSONLD(r, view.Marketplace.Copy.Title, view.Marketplace.Cards))

	s.renderPage(w, r, "home", vm)
}
