package main

import (
	"net/http"

	mw "axiomai.dev/marketplace-web/internal/middleware"
	"axiomai.dev/marketplace-web/internal/pricing"
	"axiomai.dev/marketplace-web/internal/seo"
)

// PricingHandler renders the pricing page for the billing parameter.
func (s *server) PricingHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	view := buildPricingView(lang, s.content, r.URL.Query().Get("billing"))

	vm := s.pageData(r, view.Copy.Title, view.Copy.Subtitle)
	vm.Pricing = view
	vm.SEO.AddJSONLD(s.offersJSONLD(r, view.View))

	s.renderPage(w, r, "pricing", vm)
}

// PricingPlansFrag swaps the plan grid when the billing toggle changes.
func (s *server) PricingPlansFrag(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	view := buildPricingView(lang, s.content, r.URL.Query().Get("billing"))
	w.Header().Set("HX-Push-Url", view.PageHref)
	s.renderTemplate(w, r, "frag_pricing_plans", view)
}

func (s *server) offersJSONLD(r *http.Request, v pricing.View) seo.Node {
	offers := make([]seo.Node, 0, len(v.Plans))
	for _, p := range v.Plans {
		amount, ok := seo.USDAmount(p.Price)
		if !ok {
			continue
		}
		offers = append(offers, seo.Offer(p.Name, amount, s.absoluteURL(r, pricingHref(v.Billing))))
	}
	return seo.OfferCatalog(s.content.Name, offers)
}
