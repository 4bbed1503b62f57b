package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// remotePage is the JSON document served at GET {base}/content/{kind}/{slug}?lang=.
type remotePage struct {
	Kind          string        `json:"kind"`
	Slug          string        `json:"slug"`
	Lang          string        `json:"lang"`
	Title         string        `json:"title"`
	Summary       string        `json:"summary"`
	Body          string        `json:"body"`
	Format        string        `json:"format"`
	EffectiveDate time.Time     `json:"effective_date"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Version       string        `json:"version"`
	SEO           ContentSEO    `json:"seo"`
	Banner        ContentBanner `json:"banner"`
}

func (rp remotePage) toPage() ContentPage {
	page := ContentPage{
		Kind:          rp.Kind,
		Slug:          rp.Slug,
		Lang:          rp.Lang,
		Title:         rp.Title,
		Summary:       rp.Summary,
		Body:          rp.Body,
		Format:        rp.Format,
		EffectiveDate: rp.EffectiveDate,
		UpdatedAt:     rp.UpdatedAt,
		Version:       rp.Version,
		SEO:           rp.SEO,
	}
	if rp.Banner.Title != "" || rp.Banner.Message != "" {
		banner := rp.Banner
		page.Banner = &banner
	}
	return page
}

func (c *Client) fetchRemote(ctx context.Context, kind, slug, lang string) (ContentPage, error) {
	endpoint, err := url.JoinPath(c.baseURL, "content", kind, slug)
	if err != nil {
		return ContentPage{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+url.Values{"lang": {lang}}.Encode(), nil)
	if err != nil {
		return ContentPage{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return ContentPage{}, err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ContentPage{}, ErrNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		return ContentPage{}, fmt.Errorf("cms: remote %s returned %d", endpoint, resp.StatusCode)
	}

	var doc remotePage
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return ContentPage{}, fmt.Errorf("cms: decode %s: %w", endpoint, err)
	}
	if strings.TrimSpace(doc.Body) == "" {
		return ContentPage{}, fmt.Errorf("cms: empty body for %s/%s", kind, slug)
	}
	return doc.toPage(), nil
}
