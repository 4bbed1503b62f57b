package cms

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header of a markdown page.
type frontMatter struct {
	Title         string `yaml:"title"`
	Summary       string `yaml:"summary"`
	Lang          string `yaml:"lang"`
	Format        string `yaml:"format"`
	EffectiveDate string `yaml:"effective_date"`
	UpdatedAt     string `yaml:"updated_at"`
	Version       string `yaml:"version"`
	SEO           struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		OGImage     string `yaml:"og_image"`
	} `yaml:"seo"`
	Banner *struct {
		Variant  string `yaml:"variant"`
		Title    string `yaml:"title"`
		Message  string `yaml:"message"`
		LinkText string `yaml:"link_text"`
		LinkURL  string `yaml:"link_url"`
	} `yaml:"banner"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006/01/02", "2006-1-2"}

// parseMarkdownPage splits the optional front matter from the body and maps it onto a page.
func parseMarkdownPage(src string) (ContentPage, error) {
	header, body := splitFrontMatter(src)
	var fm frontMatter
	if strings.TrimSpace(header) != "" {
		if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
			return ContentPage{}, fmt.Errorf("parse front matter: %w", err)
		}
	}
	page := ContentPage{
		Lang:          strings.TrimSpace(fm.Lang),
		Title:         strings.TrimSpace(fm.Title),
		Summary:       strings.TrimSpace(fm.Summary),
		Body:          body,
		Format:        strings.TrimSpace(fm.Format),
		Version:       strings.TrimSpace(fm.Version),
		EffectiveDate: parseDate(fm.EffectiveDate),
		UpdatedAt:     parseDate(fm.UpdatedAt),
		SEO: ContentSEO{
			Title:       strings.TrimSpace(fm.SEO.Title),
			Description: strings.TrimSpace(fm.SEO.Description),
			OGImage:     strings.TrimSpace(fm.SEO.OGImage),
		},
	}
	if b := fm.Banner; b != nil {
		page.Banner = &ContentBanner{
			Variant:  strings.TrimSpace(b.Variant),
			Title:    strings.TrimSpace(b.Title),
			Message:  strings.TrimSpace(b.Message),
			LinkText: strings.TrimSpace(b.LinkText),
			LinkURL:  strings.TrimSpace(b.LinkURL),
		}
	}
	return page, nil
}

// splitFrontMatter returns the text between leading "---" fences and the remaining body.
func splitFrontMatter(src string) (header, body string) {
	src = strings.TrimPrefix(src, "\ufeff")
	rest, ok := cutFence(src)
	if !ok {
		return "", src
	}
	for offset := 0; offset <= len(rest); {
		end := strings.IndexByte(rest[offset:], '\n')
		line := rest[offset:]
		next := len(rest)
		if end >= 0 {
			line = rest[offset : offset+end]
			next = offset + end + 1
		}
		if strings.TrimSpace(line) == "---" {
			return rest[:offset], strings.TrimLeft(rest[next:], "\r\n")
		}
		if end < 0 {
			break
		}
		offset = next
	}
	return "", src
}

func cutFence(src string) (string, bool) {
	first, rest, found := strings.Cut(src, "\n")
	if !found || strings.TrimSpace(first) != "---" {
		return "", false
	}
	return rest, true
}

func parseDate(v string) time.Time {
	if v = strings.TrimSpace(v); v == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
