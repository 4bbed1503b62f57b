package catalog

import (
	"fmt"
	"strings"
)

// Dataset is the immutable set of listings and the categories they are drawn from.
// It is built once at startup and shared read-only by every request.
type Dataset struct {
	categories []string
	listings   []Listing
	byID       map[int]int
}

// Result is the outcome of running a FilterState against a Dataset.
type Result struct {
	State    FilterState `json:"state"`
	Listings []Listing   `json:"listings"`
	Total    int         `json:"total"`
}

// Summary returns the result count line for r.
func (r Result) Summary() string {
	return Summary(len(r.Listings), r.State.Category)
}

// NewDataset validates listings against categories and returns an immutable dataset.
// categories must not include AllCategories; it is prepended automatically.
func NewDataset(categories []string, listings []Listing) (*Dataset, error) {
	known := make(map[string]struct{}, len(categories))
	cats := make([]string, 0, len(categories)+1)
	cats = append(cats, AllCategories)
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || c == AllCategories {
			return nil, fmt.Errorf("%w: category %q is reserved or empty", ErrInvalidDataset, c)
		}
		if _, dup := known[c]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidDataset, c)
		}
		known[c] = struct{}{}
		cats = append(cats, c)
	}

	ds := &Dataset{
		categories: cats,
		listings:   make([]Listing, 0, len(listings)),
		byID:       make(map[int]int, len(listings)),
	}
	for _, l := range listings {
		if _, dup := ds.byID[l.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidDataset, l.ID)
		}
		if strings.TrimSpace(l.Name) == "" {
			return nil, fmt.Errorf("%w: listing %d has no name", ErrInvalidDataset, l.ID)
		}
		if _, ok := known[l.Category]; !ok {
			return nil, fmt.Errorf("%w: listing %d has unknown category %q", ErrInvalidDataset, l.ID, l.Category)
		}
		if l.Rating < 0 || l.Rating > 5 {
			return nil, fmt.Errorf("%w: listing %d rating %.2f out of range", ErrInvalidDataset, l.ID, l.Rating)
		}
		ds.byID[l.ID] = len(ds.listings)
		ds.listings = append(ds.listings, cloneListing(l))
	}
	return ds, nil
}

// Categories returns the filter options, starting with AllCategories.
func (d *Dataset) Categories() []string {
	if d == nil {
		return []string{AllCategories}
	}
	return append([]string(nil), d.categories...)
}

// HasCategory reports whether c is a selectable filter option.
func (d *Dataset) HasCategory(c string) bool {
	for _, known := range d.Categories() {
		if known == c {
			return true
		}
	}
	return false
}

// Listings returns a copy of every listing in dataset order.
func (d *Dataset) Listings() []Listing {
	if d == nil {
		return []Listing{}
	}
	out := make([]Listing, len(d.listings))
	for i, l := range d.listings {
		out[i] = cloneListing(l)
	}
	return out
}

// Len returns the number of listings.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.listings)
}

// Listing looks up a listing by id.
func (d *Dataset) Listing(id int) (Listing, bool) {
	if d == nil {
		return Listing{}, false
	}
	i, ok := d.byID[id]
	if !ok {
		return Listing{}, false
	}
	return cloneListing(d.listings[i]), true
}

// Query runs the filter pipeline over the dataset.
func (d *Dataset) Query(state FilterState) Result {
	var src []Listing
	if d != nil {
		src = d.listings
	}
	return Result{
		State:    state,
		Listings: Filter(src, state),
		Total:    d.Len(),
	}
}
