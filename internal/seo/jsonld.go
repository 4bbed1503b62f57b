package seo

import (
	"encoding/json"
	"strconv"
	"strings"
)

const schemaContext = "https://schema.org"

// Node is a schema.org JSON-LD object. Top-level nodes carry @context; nested ones do not.
type Node map[string]any

func root(typ string) Node { return Node{"@context": schemaContext, "@type": typ} }

func nested(typ string) Node { return Node{"@type": typ} }

// set stores v under key unless it is an empty string or nil.
func (n Node) set(key string, v any) Node {
	switch x := v.(type) {
	case nil:
		return n
	case string:
		if x == "" {
			return n
		}
	case Node:
		if x == nil {
			return n
		}
	}
	n[key] = v
	return n
}

// JSON marshals v compactly, returning "" when v cannot be encoded.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization describes the site owner.
func Organization(name, url, logoURL string) Node {
	return root("Organization").set("name", name).set("url", url).set("logo", logoURL)
}

// WebSite describes the site; a non-empty searchURL adds a SearchAction whose
// target is searchURL followed by the query placeholder.
func WebSite(name, url, searchURL string) Node {
	n := root("WebSite").set("name", name).set("url", url)
	if searchURL != "" {
		n.set("potentialAction", nested("SearchAction").
			set("target", searchURL+"{search_term_string}").
			set("query-input", "required name=search_term_string"))
	}
	return n
}

// BreadcrumbItem is one named, absolute breadcrumb URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList numbers items from 1 in order.
func BreadcrumbList(items []BreadcrumbItem) Node {
	elements := make([]Node, len(items))
	for i, it := range items {
		elements[i] = nested("ListItem").set("position", i+1).set("name", it.Name).set("item", it.Item)
	}
	return root("BreadcrumbList").set("itemListElement", elements)
}

// ProductInput describes a marketplace listing.
type ProductInput struct {
	Name        string
	Description string
	URL         string
	Image       string
	SKU         string
	Category    string
	Price       string // display price, e.g. "$49/month"
	Rating      float64
}

// Product builds a Product with an Offer when Price carries a dollar amount
// and an AggregateRating when Rating is positive.
func Product(p ProductInput) Node {
	n := root("Product").
		set("name", p.Name).
		set("description", p.Description).
		set("url", p.URL).
		set("image", p.Image).
		set("sku", p.SKU).
		set("category", p.Category)
	if amount, ok := USDAmount(p.Price); ok {
		n.set("offers", Offer(p.Name, amount, p.URL))
	}
	if p.Rating > 0 {
		n.set("aggregateRating", nested("AggregateRating").
			set("ratingValue", strconv.FormatFloat(p.Rating, 'f', 1, 64)).
			set("bestRating", "5"))
	}
	return n
}

// Offer is a USD price; amount is a plain decimal string such as "49".
func Offer(name, amount, url string) Node {
	return nested("Offer").set("name", name).set("price", amount).set("priceCurrency", "USD").set("url", url)
}

// OfferCatalog groups plan offers under one named product.
func OfferCatalog(name string, offers []Node) Node {
	return root("Product").set("name", name).set("offers", offers)
}

// ItemList wraps nodes in a numbered ItemList.
func ItemList(name string, items []Node) Node {
	elements := make([]Node, len(items))
	for i, it := range items {
		elements[i] = nested("ListItem").set("position", i+1).set("item", it)
	}
	return root("ItemList").
		set("name", name).
		set("numberOfItems", len(items)).
		set("itemListElement", elements)
}

// USDAmount extracts the dollar amount from a display price like "$49/month".
func USDAmount(price string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(price), "$")
	if !ok {
		return "", false
	}
	end := strings.IndexFunc(rest, func(r rune) bool { return r != '.' && (r < '0' || r > '9') })
	if end < 0 {
		end = len(rest)
	}
	amount := strings.TrimRight(rest[:end], ".")
	return amount, amount != ""
}
