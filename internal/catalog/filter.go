package catalog

import (
	"math"
	"sort"
	"strings"
)

// Filter returns the listings visible under state, ordered by its sort key.
// The input slice is not modified. Equal sort keys keep their input order.
func Filter(listings []Listing, state FilterState) []Listing {
	query := strings.ToLower(state.Query)

	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if state.Category != AllCategories && l.Category != state.Category {
			continue
		}
		if query != "" && !matchesQuery(l, query) {
			continue
		}
		out = append(out, cloneListing(l))
	}

	if less := lessFor(state.Sort); less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j])
		})
	}
	return out
}

// matchesQuery expects query already lower-cased.
func matchesQuery(l Listing, query string) bool {
	if strings.Contains(strings.ToLower(l.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Description), query) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// lessFor returns nil for unknown keys so the filtered order is kept.
func lessFor(key SortKey) func(a, b Listing) bool {
	switch key {
	case SortFeatured:
		return func(a, b Listing) bool { return a.Featured && !b.Featured }
	case SortRating:
		return func(a, b Listing) bool { return a.Rating > b.Rating }
	case SortDownloads:
		return func(a, b Listing) bool { return ParseDownloads(a.Downloads) > ParseDownloads(b.Downloads) }
	default:
		return nil
	}
}

// ParseDownloads reads the leading integer of a download count and ignores the rest.
// "1.2k" parses to 1 and "890" to 890; suffixes are not treated as multipliers.
// Strings without leading digits parse to 0. Values too large for int saturate at math.MaxInt.
func ParseDownloads(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			break
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}
