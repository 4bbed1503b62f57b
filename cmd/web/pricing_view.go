package main

import (
	"axiomai.dev/marketplace-web/internal/pricing"
	"axiomai.dev/marketplace-web/internal/site"
)

// PricingView drives the plan grid, billing toggle, and FAQ.
type PricingView struct {
	Lang       string
	Copy       site.PricingCopy
	View       pricing.View
	ToggleHref string
	TogglePage string
	PageHref   string
}

func buildPricingView(lang string, content *site.Content, billing string) PricingView {
	b := pricing.ParseBilling(billing)
	return PricingView{
		Lang:       lang,
		Copy:       content.Pricing,
		View:       content.Plans.View(b),
		ToggleHref: "/pricing/plans?billing=" + string(b.Toggle()),
		TogglePage: pricingHref(b.Toggle()),
		PageHref:   pricingHref(b),
	}
}

func pricingHref(b pricing.Billing) string {
	if b == pricing.Annual {
		return "/pricing?billing=" + string(b)
	}
	return "/pricing"
}
