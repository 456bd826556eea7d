// Package listing derives the visible product pages of a storefront listing from filter, sort and
// page state, and maps that state to and from its query string.
package listing

import (
	"slices"

	"storefront.GO/catalog"
)

const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 500
)

// Filters selects products. An empty facet set does not filter; the price range is closed and
// compared against the list price.
type Filters struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Colors     []string `json:"colors"`
	MinPrice   int      `json:"minPrice"`
	MaxPrice   int      `json:"maxPrice"`
}

func DefaultFilters() Filters {
	return Filters{
		Categories: []string{},
		Brands:     []string{},
		Colors:     []string{},
		MinPrice:   DefaultMinPrice,
		MaxPrice:   DefaultMaxPrice,
	}
}

// Match reports whether p passes every predicate of f.
func (f Filters) Match(p catalog.Product) bool {
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.Brand) {
		return false
	}
	if len(f.Colors) > 0 && !slices.ContainsFunc(p.Colors, func(c string) bool {
		return slices.Contains(f.Colors, c)
	}) {
		return false
	}
	return p.Price >= float64(f.MinPrice) && p.Price <= float64(f.MaxPrice)
}

// Equal compares filters as sets.
func (f Filters) Equal(o Filters) bool {
	return f.MinPrice == o.MinPrice && f.MaxPrice == o.MaxPrice &&
		sameSet(f.Categories, o.Categories) &&
		sameSet(f.Brands, o.Brands) &&
		sameSet(f.Colors, o.Colors)
}

func sameSet(a, b []string) bool {
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	for _, v := range b {
		if !slices.Contains(a, v) {
			return false
		}
	}
	return true
}

// Filter keeps the products matching f, in input order.
func Filter(products []catalog.Product, f Filters) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
