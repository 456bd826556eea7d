package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront.GO/catalog"
)

func TestCountFacets(t *testing.T) {
	f := CountFacets(catalog.MustFixture().All())

	assert.Equal(t, 24, f.Total)
	assert.Equal(t, []Facet{{"bags", 8}, {"belts", 6}, {"sneakers", 10}}, f.Categories)
	assert.Contains(t, f.Brands, Facet{Value: "Nike", Count: 4})
	assert.Contains(t, f.Brands, Facet{Value: "Gucci", Count: 4})
	assert.Contains(t, f.Colors, Facet{Value: "yellow", Count: 2})
	assert.Equal(t, 30.0, f.MinPrice)
	assert.Equal(t, 499.0, f.MaxPrice)
}

func TestCountFacetsEmpty(t *testing.T) {
	f := CountFacets(nil)
	assert.Equal(t, 0, f.Total)
	assert.Empty(t, f.Brands)
	assert.Equal(t, 0.0, f.MinPrice)
}

func TestDeals(t *testing.T) {
	sections := Deals(catalog.MustFixture().All())
	if assert.Len(t, sections, 3) {
		assert.Equal(t, []string{"3", "8", "14", "20", "24", "1", "4", "6"}, ids(sections[0].Products))
		assert.Equal(t, []string{"1", "3", "4", "8", "10", "11", "14", "15"}, ids(sections[1].Products))
		assert.Equal(t, []string{"1", "3", "4", "6", "8", "10", "11", "14"}, ids(sections[2].Products))
	}
}

func TestDealsPaddingNoDuplicates(t *testing.T) {
	a := product("a", "A", "Nike", 100, "black")
	b := product("b", "B", "Puma", 100, "black")
	b.DiscountPrice = ptrF(80)
	c := product("c", "C", "Gucci", 100, "black")

	mega := Deals([]catalog.Product{a, b, c})[2]
	assert.Equal(t, []string{"b", "a", "c"}, ids(mega.Products))

	hot := Deals([]catalog.Product{a, b, c})[1]
	assert.Empty(t, hot.Products)
}
