package listing

import (
	"cmp"
	"slices"
	"strings"

	"storefront.GO/catalog"
)

type SortOption string

const (
	SortName      SortOption = "name"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortRating    SortOption = "rating"

	DefaultSort = SortName
)

var SortOptions = []SortOption{SortName, SortPriceAsc, SortPriceDesc, SortRating}

func (s SortOption) Valid() bool {
	return slices.Contains(SortOptions, s)
}

// ParseSort returns the option named s, or the default for anything unknown.
func ParseSort(s string) SortOption {
	if o := SortOption(s); o.Valid() {
		return o
	}
	return DefaultSort
}

// Sort returns a stably sorted copy of products. Unknown options sort by name.
func Sort(products []catalog.Product, by SortOption) []catalog.Product {
	out := slices.Clone(products)
	slices.SortStableFunc(out, comparator(by))
	return out
}

func comparator(by SortOption) func(a, b catalog.Product) int {
	switch by {
	case SortPriceAsc:
		return func(a, b catalog.Product) int {
			return cmp.Compare(a.EffectiveCents(), b.EffectiveCents())
		}
	case SortPriceDesc:
		return func(a, b catalog.Product) int {
			return cmp.Compare(b.EffectiveCents(), a.EffectiveCents())
		}
	case SortRating:
		return func(a, b catalog.Product) int {
			return cmp.Compare(b.RatingValue, a.RatingValue)
		}
	default:
		return func(a, b catalog.Product) int {
			return strings.Compare(a.Name, b.Name)
		}
	}
}
