package cms

import (
	"context"
	"html/template"
	"strings"
	"time"
)

const (
	defaultContentFormat = "markdown"
	defaultContentKind   = "pages"
)

// ContentPage is a localized static page such as the FAQ or terms.
type ContentPage struct {
	Kind          string
	Slug          string
	Lang          string
	Title         string
	Summary       string
	Body          string
	Format        string // "markdown" (default) or "html"
	HTML          template.HTML
	Excerpt       string
	EffectiveDate time.Time
	UpdatedAt     time.Time
	Version       string
	Banner        *ContentBanner
	SEO           ContentSEO
}

// ContentSEO holds optional metadata overrides for a page.
type ContentSEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	OGImage     string `json:"og_image"`
}

// ContentBanner is an optional notice shown above the body.
type ContentBanner struct {
	Variant  string `json:"variant"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	LinkText string `json:"link_text"`
	LinkURL  string `json:"link_url"`
}

func (p ContentPage) clone() ContentPage {
	if p.Banner != nil {
		b := *p.Banner
		p.Banner = &b
	}
	return p
}

// GetContentPage returns the rendered page for kind/slug in lang. The remote CMS is
// consulted first when configured; any remote failure falls through to local markdown.
func (c *Client) GetContentPage(ctx context.Context, kind, slug, lang string) (ContentPage, error) {
	if kind = strings.ToLower(strings.TrimSpace(kind)); kind == "" {
		kind = defaultContentKind
	}
	if slug = sanitizeSlug(slug); slug == "" {
		return ContentPage{}, ErrNotFound
	}
	lang = normalizeLang(lang)

	key := cacheKey(kind, lang, slug)
	if page, ok := c.cache.get(key); ok {
		return page, nil
	}

	page, err := c.lookup(ctx, kind, slug, lang)
	if err != nil {
		return ContentPage{}, err
	}
	page.Kind = firstNonEmpty(page.Kind, kind)
	page.Slug = firstNonEmpty(page.Slug, slug)
	page.Lang = firstNonEmpty(page.Lang, lang)
	page.Format = firstNonEmpty(page.Format, defaultContentFormat)
	if page.Title == "" {
		page.Title = prettifySlug(page.Slug)
	}
	if err := renderPage(&page); err != nil {
		return ContentPage{}, err
	}
	c.cache.put(key, page)
	return page.clone(), nil
}

func (c *Client) lookup(ctx context.Context, kind, slug, lang string) (ContentPage, error) {
	if c.baseURL != "" {
		if page, err := c.fetchRemote(ctx, kind, slug, lang); err == nil {
			return page, nil
		}
	}
	return c.findLocal(kind, slug, lang)
}

// sanitizeSlug lowercases slug and rejects anything that could leave the kind directory.
func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.ToLower(strings.TrimSpace(slug)), "/")
	if strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

// prettifySlug turns "launch-notes" into "Launch Notes".
func prettifySlug(slug string) string {
	words := strings.Split(strings.TrimSpace(slug), "-")
	for i, w := range words {
		if w != "" && w[0] >= 'a' && w[0] <= 'z' {
			words[i] = string(w[0]-'a'+'A') + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
