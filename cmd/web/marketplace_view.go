package main

import (
	"net/url"
	"strconv"

	"axiomai.dev/marketplace-web/internal/catalog"
	"axiomai.dev/marketplace-web/internal/format"
	"axiomai.dev/marketplace-web/internal/site"
)

// MarketplaceView drives the listing grid, its filters, and the results fragment.
type MarketplaceView struct {
	Lang     string
	Copy     site.MarketplaceCopy
	State    catalog.FilterState
	Summary  string
	Total    int
	Query    string
	Empty    bool

	// UnknownCategory is set when the category parameter names no filter option.
	UnknownCategory bool

	Chips    []CategoryChip
	Sorts    []SortChoice
	Cards    []AgentCard
	Endpoint string
}

// CategoryChip is one category filter link.
type CategoryChip struct {
	Label    string
	Href     string
	Fragment string
	Active   bool
}

// SortChoice renders an option of the sort select.
type SortChoice struct {
	Key      string
	Label    string
	Selected bool
}

// AgentCard is the display form of a listing.
type AgentCard struct {
	ID          int
	Name        string
	Category    string
	Description string
	Price       string
	Rating      string
	Downloads   string
	Featured    bool
	Image       string
	Tags        []string
	Href        string
}

func buildMarketplaceView(lang string, content *site.Content, q url.Values) MarketplaceView {
	state := catalog.FilterStateFromValues(q)
	res := content.Catalog.Query(state)

	view := MarketplaceView{
		Lang:     lang,
		Copy:     content.Marketplace,
		State:    state,
		Summary:  res.Summary(),
		Total:    res.Total,
		Query:    state.Values().Encode(),
		Empty:    len(res.Listings) == 0,
		Endpoint: "/marketplace/results",

		UnknownCategory: !content.Catalog.HasCategory(state.Category),
	}

	for _, c := range content.Catalog.Categories() {
		next := state.WithCategory(c)
		view.Chips = append(view.Chips, CategoryChip{
			Label:    c,
			Href:     marketplaceHref(next),
			Fragment: resultsHref(next),
			Active:   c == state.Category,
		})
	}
	for _, o := range catalog.SortOptions() {
		view.Sorts = append(view.Sorts, SortChoice{
			Key:      string(o.Key),
			Label:    o.Label,
			Selected: o.Key == state.Sort,
		})
	}
	view.Cards = make([]AgentCard, 0, len(res.Listings))
	for _, l := range res.Listings {
		view.Cards = append(view.Cards, agentCard(l))
	}
	return view
}

func agentCard(l catalog.Listing) AgentCard {
	return AgentCard{
		ID:          l.ID,
		Name:        l.Name,
		Category:    l.Category,
		Description: l.Description,
		Price:       l.Price,
		Rating:      format.Rating(l.Rating),
		Downloads:   l.Downloads,
		Featured:    l.Featured,
		Image:       l.Image,
		Tags:        l.Tags,
		Href:        agentHref(l.ID),
	}
}

func agentHref(id int) string {
	return "/marketplace/agents/" + strconv.Itoa(id)
}

func resultsHref(state catalog.FilterState) string {
	if enc := state.Values().Encode(); enc != "" {
		return "/marketplace/results?" + enc
	}
	return "/marketplace/results"
}

func marketplaceHref(state catalog.FilterState) string {
	if enc := state.Values().Encode(); enc != "" {
		return "/marketplace?" + enc
	}
	return "/marketplace"
}
