package listing

import (
	"net/url"
	"strconv"
	"strings"
)

// Query string keys, in the order Encode writes them.
const (
	KeyBrands     = "brands"
	KeyColors     = "colors"
	KeyCategories = "categories"
	KeyMinPrice   = "minPrice"
	KeyMaxPrice   = "maxPrice"
	KeySort       = "sort"
	KeyPage       = "page"
)

// Encode writes s as a query string ("?brands=Gucci&sort=price-desc&page=2"). Fields equal to
// their default are left out; a state of all defaults encodes to "".
func Encode(s State) string {
	var parts []string
	add := func(key, value string) {
		parts = append(parts, key+"="+value)
	}
	addSet := func(key string, values []string) {
		if len(values) == 0 {
			return
		}
		escaped := make([]string, len(values))
		for i, v := range values {
			escaped[i] = url.QueryEscape(v)
		}
		add(key, strings.Join(escaped, ","))
	}

	addSet(KeyBrands, s.Filters.Brands)
	addSet(KeyColors, s.Filters.Colors)
	addSet(KeyCategories, s.Filters.Categories)
	if s.Filters.MinPrice != DefaultMinPrice {
		add(KeyMinPrice, strconv.Itoa(s.Filters.MinPrice))
	}
	if s.Filters.MaxPrice != DefaultMaxPrice {
		add(KeyMaxPrice, strconv.Itoa(s.Filters.MaxPrice))
	}
	if sort := ParseSort(string(s.Sort)); sort != DefaultSort {
		add(KeySort, string(sort))
	}
	if s.Page > 1 {
		add(KeyPage, strconv.Itoa(s.Page))
	}

	if len(parts) == 0 {
		return ""
	}
	return "?" + strings.Join(parts, "&")
}

// Decode reads a state from a raw query string, with or without the leading "?". It never
// fails: absent or unusable values fall back to their defaults.
func Decode(raw string) State {
	values, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	return DecodeValues(values)
}

// DecodeValues is Decode for already parsed values.
func DecodeValues(values url.Values) State {
	s := DefaultState()
	s.Filters.Brands = splitSet(values, KeyBrands)
	s.Filters.Colors = splitSet(values, KeyColors)
	s.Filters.Categories = splitSet(values, KeyCategories)
	s.Filters.MinPrice = intValue(values, KeyMinPrice, DefaultMinPrice)
	s.Filters.MaxPrice = intValue(values, KeyMaxPrice, DefaultMaxPrice)
	if values.Has(KeySort) {
		s.Sort = ParseSort(values.Get(KeySort))
	}
	if p := intValue(values, KeyPage, 1); p > 0 {
		s.Page = p
	}
	return s
}

func splitSet(values url.Values, key string) []string {
	if !values.Has(key) {
		return []string{}
	}
	out := []string{}
	for _, v := range strings.Split(values.Get(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func intValue(values url.Values, key string, def int) int {
	if !values.Has(key) {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(values.Get(key)))
	if err != nil {
		return def
	}
	return n
}
