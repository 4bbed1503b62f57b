// Package nav defines the site header links and derives breadcrumbs from URL paths.
package nav

import (
	"path"
	"strings"
)

// Item is a header link keyed by its i18n label.
type Item struct {
	Path     string
	LabelKey string
}

// RenderedItem is an Item resolved against the current request path.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb is one breadcrumb. Templates translate LabelKey when set, else show Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main lists the header links in display order.
var Main = []Item{
	{Path: "/marketplace", LabelKey: "nav.marketplace"},
	{Path: "/pricing", LabelKey: "nav.pricing"},
	{Path: "/pages/faq", LabelKey: "nav.faq"},
}

// Build marks the header link that owns current as active.
func Build(current string) []RenderedItem {
	current = cleanPath(current)
	out := make([]RenderedItem, len(Main))
	for i, it := range Main {
		out[i] = RenderedItem{Href: it.Path, LabelKey: it.LabelKey, Active: under(current, it.Path)}
	}
	return out
}

// under reports whether p equals prefix or is nested below it.
func under(p, prefix string) bool {
	if prefix == "/" {
		return p == "/"
	}
	rest, ok := strings.CutPrefix(p, prefix)
	return ok && (rest == "" || rest[0] == '/')
}

// Breadcrumbs returns Home followed by one crumb per path segment. Segments that
// match a header link reuse its label key; the last crumb is active.
func Breadcrumbs(current string) []Crumb {
	current = cleanPath(current)
	crumbs := []Crumb{{Href: "/", LabelKey: "nav.home", Active: current == "/"}}
	if current == "/" {
		return crumbs
	}
	segments := strings.Split(strings.TrimPrefix(current, "/"), "/")
	for i := range segments {
		href := "/" + strings.Join(segments[:i+1], "/")
		crumbs = append(crumbs, Crumb{
			Href:     href,
			LabelKey: labelKeyFor(href),
			Label:    humanize(segments[i]),
			Active:   i == len(segments)-1,
		})
	}
	return crumbs
}

// WithLastLabel replaces the final crumb's label, e.g. with a listing name.
func WithLastLabel(crumbs []Crumb, label string) []Crumb {
	if len(crumbs) == 0 || label == "" {
		return crumbs
	}
	out := append([]Crumb(nil), crumbs...)
	last := &out[len(out)-1]
	last.Label, last.LabelKey = label, ""
	return out
}

func labelKeyFor(href string) string {
	for _, it := range Main {
		if it.Path == href {
			return it.LabelKey
		}
	}
	return ""
}

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	return path.Clean("/" + p)
}

// humanize turns "ai-agents" into "Ai agents".
func humanize(seg string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
