package catalog

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"axiomai.dev/marketplace-web/internal/format"
)

// AllCategories is the selector that admits every listing. It is never a listing's own category.
const AllCategories = "All"

// ErrInvalidDataset is returned when listings violate dataset invariants.
var ErrInvalidDataset = errors.New("catalog: invalid dataset")

// Listing is one marketplace entry.
type Listing struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Price       string   `json:"price" yaml:"price"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Downloads   string   `json:"downloads" yaml:"downloads"`
	Featured    bool     `json:"featured" yaml:"featured"`
	Image       string   `json:"image,omitempty" yaml:"image"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// SortKey selects the result ordering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortRating    SortKey = "rating"
	SortDownloads SortKey = "downloads"
)

// SortOption pairs a sort key with its display label.
type SortOption struct {
	Key   SortKey
	Label string
}

var sortOptions = []SortOption{
	{Key: SortFeatured, Label: "Featured"},
	{Key: SortRating, Label: "Top Rated"},
	{Key: SortDownloads, Label: "Most Downloaded"},
}

// SortOptions returns the selectable sort keys in display order.
func SortOptions() []SortOption {
	return append([]SortOption(nil), sortOptions...)
}

// Label returns the display label, or the raw key when unknown.
func (k SortKey) Label() string {
	for _, o := range sortOptions {
		if o.Key == k {
			return o.Label
		}
	}
	return string(k)
}

// FilterState is the per-view selection applied to the dataset.
type FilterState struct {
	Category string  `json:"category"`
	Query    string  `json:"query"`
	Sort     SortKey `json:"sort"`
}

// DefaultFilterState is the state a freshly mounted view starts with.
func DefaultFilterState() FilterState {
	return FilterState{Category: AllCategories, Query: "", Sort: SortFeatured}
}

// FilterStateFromValues reads category, q and sort from query values.
// Missing values fall back to the defaults; present values are taken as-is.
func FilterStateFromValues(v url.Values) FilterState {
	st := DefaultFilterState()
	if v == nil {
		return st
	}
	if c := v.Get("category"); c != "" {
		st.Category = c
	}
	st.Query = v.Get("q")
	if s := strings.TrimSpace(v.Get("sort")); s != "" {
		st.Sort = SortKey(s)
	}
	return st
}

// Values encodes the state as query values, omitting defaults.
func (s FilterState) Values() url.Values {
	v := url.Values{}
	if s.Category != "" && s.Category != AllCategories {
		v.Set("category", s.Category)
	}
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	if s.Sort != "" && s.Sort != SortFeatured {
		v.Set("sort", string(s.Sort))
	}
	return v
}

// WithCategory returns a copy of the state with the category replaced.
func (s FilterState) WithCategory(c string) FilterState {
	s.Category = c
	return s
}

// Summary renders the result count line, e.g. "Showing 2 agents in Chatbots".
func Summary(n int, category string) string {
	out := "Showing " + strconv.Itoa(n) + " " + format.Plural(n, "agent", "agents")
	if category != AllCategories {
		out += " in " + category
	}
	return out
}

func cloneListing(l Listing) Listing {
	cp := l
	if l.Tags != nil {
		cp.Tags = append([]string(nil), l.Tags...)
	}
	return cp
}
