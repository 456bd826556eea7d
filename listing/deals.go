package listing

import (
	"slices"

	"storefront.GO/catalog"
)

// MaxDeals caps each deal section.
const MaxDeals = 8

type DealSection struct {
	Key      string            `json:"key"`
	Title    string            `json:"title"`
	Products []catalog.Product `json:"products"`
}

var megaBrands = []string{"Nike", "Adidas", "Gucci"}

var (
	lightningRule = func(p catalog.Product) bool { return p.Percent() >= 40 }
	hotRule       = func(p catalog.Product) bool { return p.IsHot || p.Percent() >= 30 }
	topRatedRule  = func(p catalog.Product) bool { return p.RatingValue >= 4.5 }
	megaBrandRule = func(p catalog.Product) bool { return slices.Contains(megaBrands, p.Brand) }
)

// Deals builds the flash-sale sections. Each section takes its primary matches in catalog
// order and, when short of MaxDeals, pads with a looser rule without repeating a product.
func Deals(products []catalog.Product) []DealSection {
	return []DealSection{
		{Key: "lightning", Title: "Lightning Deals", Products: pick(products, lightningRule, catalog.Product.Discounted)},
		{Key: "hot", Title: "Hot Offers", Products: pick(products, hotRule, topRatedRule)},
		{Key: "mega", Title: "Mega Deals", Products: pick(products, catalog.Product.Discounted, megaBrandRule)},
	}
}

func pick(products []catalog.Product, primary, padding func(catalog.Product) bool) []catalog.Product {
	out := make([]catalog.Product, 0, MaxDeals)
	seen := map[string]bool{}
	for _, rule := range []func(catalog.Product) bool{primary, padding} {
		for _, p := range products {
			if len(out) == MaxDeals {
				return out
			}
			if seen[p.ID] || !rule(p) {
				continue
			}
			seen[p.ID] = true
			out = append(out, p)
		}
	}
	return out
}
