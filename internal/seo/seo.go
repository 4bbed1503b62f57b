package seo

// OpenGraph holds og:* tags.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

// Twitter holds twitter:* tags.
type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Alternate is an hreflang link.
type Alternate struct {
	Href     string
	Hreflang string
}

// Meta is the per-page head metadata rendered by the layout.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
	JSONLD      []string
}

// Fill completes OpenGraph and Twitter fields from the page title and description.
func (m *Meta) Fill(siteName, canonical string) {
	m.Canonical = canonical
	m.OG.URL = canonical
	m.OG.SiteName = siteName
	if m.OG.Title == "" {
		m.OG.Title = m.Title
	}
	if m.OG.Description == "" {
		m.OG.Description = m.Description
	}
	if m.OG.Type == "" {
		m.OG.Type = "website"
	}
	if m.Twitter.Card == "" {
		m.Twitter.Card = "summary_large_image"
	}
}

// AddJSONLD appends a marshalled schema payload, skipping ones that fail to encode.
func (m *Meta) AddJSONLD(v any) {
	if s := JSON(v); s != "" {
		m.JSONLD = append(m.JSONLD, s)
	}
}
