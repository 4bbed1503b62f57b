package handlers

import (
	"axiomai.dev/marketplace-web/internal/config"
	"axiomai.dev/marketplace-web/internal/nav"
	"axiomai.dev/marketplace-web/internal/seo"
)

// PageData is the view model every full page hands to the shared layout.
type PageData struct {
	Title     string
	Lang      string
	SiteName  string
	SEO       seo.Meta
	Analytics config.Analytics

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	Languages   []LanguageLink

	// Optional per-page view model payloads
	Home        any
	Marketplace any
	Listing     any
	Pricing     any
	Content     any
	NotFound    bool
}

// LanguageLink renders one entry of the language switcher.
type LanguageLink struct {
	Lang   string
	Href   string
	Active bool
}

// New returns PageData with the layout fields populated for path.
func New(lang, siteName, path string, analytics config.Analytics) PageData {
	return PageData{
		Title:       siteName,
		Lang:        lang,
		SiteName:    siteName,
		Analytics:   analytics,
		Path:        path,
		Nav:         nav.Build(path),
		Breadcrumbs: nav.Breadcrumbs(path),
	}
}

// SetTitle sets the document title and the matching SEO title.
func (p *PageData) SetTitle(title, description string) {
	p.Title = title
	p.SEO.Title = title
	if p.SiteName != "" && title != p.SiteName {
		p.SEO.Title = title + " | " + p.SiteName
	}
	p.SEO.Description = description
}
