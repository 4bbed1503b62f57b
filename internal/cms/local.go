package cms

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

//go:embed content
var embeddedContent embed.FS

// localSources lists the content directory (when present) ahead of the embedded pages.
func (c *Client) localSources() []fs.FS {
	var sources []fs.FS
	if info, err := os.Stat(c.contentDir); err == nil && info.IsDir() {
		sources = append(sources, os.DirFS(c.contentDir))
	}
	if sub, err := fs.Sub(embeddedContent, "content"); err == nil {
		sources = append(sources, sub)
	}
	return sources
}

// findLocal tries lang then the default language in each source in turn.
func (c *Client) findLocal(kind, slug, lang string) (ContentPage, error) {
	langs := []string{lang}
	if lang != defaultLang {
		langs = append(langs, defaultLang)
	}
	for _, fsys := range c.localSources() {
		for _, l := range langs {
			page, err := readMarkdownFile(fsys, kind, slug, l)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return page, err
		}
	}
	return ContentPage{}, ErrNotFound
}

// readMarkdownFile loads {kind}/{lang}/{slug}.md.
func readMarkdownFile(fsys fs.FS, kind, slug, lang string) (ContentPage, error) {
	name := path.Join(kind, lang, slug+".md")
	raw, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return ContentPage{}, ErrNotFound
	}
	if err != nil {
		return ContentPage{}, err
	}
	page, err := parseMarkdownPage(string(raw))
	if err != nil {
		return ContentPage{}, fmt.Errorf("cms: %s: %w", name, err)
	}
	if page.Lang == "" {
		page.Lang = lang
	}
	if page.UpdatedAt.IsZero() {
		// zero for embedded files
		if info, err := fs.Stat(fsys, name); err == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	return page, nil
}
