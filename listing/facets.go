package listing

import (
	"cmp"
	"slices"

	"storefront.GO/catalog"
)

type Facet struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facets are the sidebar counts for a product set.
type Facets struct {
	Categories []Facet `json:"categories"`
	Brands     []Facet `json:"brands"`
	Colors     []Facet `json:"colors"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
	Total      int     `json:"total"`
}

// CountFacets counts products per category, brand and color, and spans their list prices.
// Facet values are sorted by value.
func CountFacets(products []catalog.Product) Facets {
	categories := map[string]int{}
	brands := map[string]int{}
	colors := map[string]int{}
	f := Facets{Total: len(products)}
	for i, p := range products {
		categories[p.Category]++
		brands[p.Brand]++
		for _, c := range p.Colors {
			colors[c]++
		}
		if i == 0 || p.Price < f.MinPrice {
			f.MinPrice = p.Price
		}
		if i == 0 || p.Price > f.MaxPrice {
			f.MaxPrice = p.Price
		}
	}
	f.Categories = toFacets(categories)
	f.Brands = toFacets(brands)
	f.Colors = toFacets(colors)
	return f
}

func toFacets(counts map[string]int) []Facet {
	out := make([]Facet, 0, len(counts))
	for v, n := range counts {
		out = append(out, Facet{Value: v, Count: n})
	}
	slices.SortFunc(out, func(a, b Facet) int { return cmp.Compare(a.Value, b.Value) })
	return out
}
