package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront.GO/catalog"
)

func ptrF(v float64) *float64 { return &v }

func product(id, name, brand string, price float64, colors ...string) catalog.Product {
	return catalog.Product{ID: id, Name: name, Brand: brand, Category: "sneakers", Price: price, Colors: colors}
}

func ids(products []catalog.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterIdempotent(t *testing.T) {
	all := catalog.MustFixture().All()
	filters := []Filters{
		DefaultFilters(),
		{Brands: []string{"Gucci", "Nike"}, MinPrice: 0, MaxPrice: 500},
		{Colors: []string{"pink"}, Categories: []string{"bags"}, MinPrice: 100, MaxPrice: 450},
		{Brands: []string{"Unknown"}, MinPrice: 0, MaxPrice: 500},
		{MinPrice: 400, MaxPrice: 100},
	}
	for i, f := range filters {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			once := Filter(all, f)
			assert.Equal(t, once, Filter(once, f))
		})
	}
}

func TestFacetFilterScenario(t *testing.T) {
	sneakers := catalog.MustFixture().Category("sneakers")
	require.Len(t, sneakers, 10)

	f := DefaultFilters()
	f.Brands = []string{"Nike"}
	res := Query(sneakers, f, SortName, 1, DefaultPageSize)

	assert.Equal(t, 3, res.TotalCount)
	assert.Equal(t, 1, res.TotalPages)
	assert.Len(t, res.Items, 3)
	for _, p := range res.Items {
		assert.Equal(t, "Nike", p.Brand)
	}
}

func TestEmptyFacetMeansNoFilter(t *testing.T) {
	all := catalog.MustFixture().All()
	assert.Len(t, Filter(all, DefaultFilters()), len(all))

	f := DefaultFilters()
	f.Colors = []string{"yellow"}
	assert.Equal(t, []string{"10", "23"}, ids(Filter(all, f)))
}

func TestPriceFilterUsesListPrice(t *testing.T) {
	expensive := product("a", "A", "X", 600, "black")
	expensive.DiscountPrice = ptrF(400)
	cheap := product("b", "B", "X", 500, "black")

	got := Filter([]catalog.Product{expensive, cheap}, DefaultFilters())
	assert.Equal(t, []string{"b"}, ids(got))

	f := Filters{MinPrice: 500, MaxPrice: 600}
	assert.Equal(t, []string{"a", "b"}, ids(Filter([]catalog.Product{expensive, cheap}, f)))
}

func TestSortByEffectivePrice(t *testing.T) {
	a := product("a", "A", "X", 300, "black")
	a.DiscountPrice = ptrF(50)
	b := product("b", "B", "X", 100, "black")
	c := product("c", "C", "X", 200, "black")
	list := []catalog.Product{b, c, a}

	assert.Equal(t, []string{"a", "b", "c"}, ids(Sort(list, SortPriceAsc)))
	assert.Equal(t, []string{"c", "b", "a"}, ids(Sort(list, SortPriceDesc)))
	assert.Equal(t, []string{"b", "c", "a"}, ids(list))
}

func TestSortStable(t *testing.T) {
	list := []catalog.Product{
		product("1", "Same", "X", 10, "black"),
		product("2", "Alpha", "X", 10, "black"),
		product("3", "Same", "X", 10, "black"),
		product("4", "Same", "X", 5, "black"),
	}
	for _, by := range SortOptions {
		first := Sort(list, by)
		assert.Equal(t, first, Sort(first, by), by)
		assert.Equal(t, first, Sort(list, by), by)
	}
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids(Sort(list, SortName)))
	assert.Equal(t, []string{"4", "1", "2", "3"}, ids(Sort(list, SortPriceAsc)))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(Sort(list, SortRating)))
}

func TestSortRatingDescending(t *testing.T) {
	a := product("a", "A", "X", 1, "black")
	a.RatingValue = 3.5
	b := product("b", "B", "X", 1, "black")
	b.RatingValue = 4.9
	assert.Equal(t, []string{"b", "a"}, ids(Sort([]catalog.Product{a, b}, SortRating)))
}

func TestUnknownSortFallsBackToName(t *testing.T) {
	all := catalog.MustFixture().All()
	assert.Equal(t, Sort(all, SortName), Sort(all, SortOption("popularity")))
	assert.Equal(t, SortName, ParseSort("popularity"))
	assert.Equal(t, SortRating, ParseSort("rating"))
}

func TestPaginationCoverage(t *testing.T) {
	sorted := Sort(catalog.MustFixture().All(), SortPriceAsc)
	for size := 1; size <= 9; size++ {
		total := TotalPages(len(sorted), size)
		var union []catalog.Product
		for page := 1; page <= total; page++ {
			visible := Paginate(sorted, page, size)
			assert.LessOrEqual(t, len(visible), size)
			union = append(union, visible...)
		}
		assert.Equal(t, sorted, union, "page size %d", size)
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	all := catalog.MustFixture().All()
	assert.Empty(t, Paginate(all, 0, 6))
	assert.Empty(t, Paginate(all, -1, 6))
	assert.Empty(t, Paginate(all, 5, 6))
	assert.Len(t, Paginate(all, 4, 6), 6)
	assert.Empty(t, Paginate(all, 1, 0))

	res := Query(all, DefaultFilters(), SortName, 9, 6)
	assert.Empty(t, res.Items)
	assert.Equal(t, 9, res.Page)
	assert.Equal(t, 4, res.TotalPages)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 6))
	assert.Equal(t, 1, TotalPages(6, 6))
	assert.Equal(t, 2, TotalPages(7, 6))
	assert.Equal(t, 0, TotalPages(7, 0))
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		current, total int
		want           []int
	}{
		{1, 0, []int{}},
		{1, 1, []int{1}},
		{2, 5, []int{1, 2, 3, 4, 5}},
		{1, 10, []int{1, 2, 3, 4, Ellipsis, 10}},
		{3, 10, []int{1, 2, 3, 4, Ellipsis, 10}},
		{8, 10, []int{1, Ellipsis, 7, 8, 9, 10}},
		{10, 10, []int{1, Ellipsis, 7, 8, 9, 10}},
		{5, 10, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PageWindow(tt.current, tt.total), "%d/%d", tt.current, tt.total)
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	all := catalog.MustFixture().All()
	before := ids(all)
	Query(all, DefaultFilters(), SortPriceDesc, 1, 6)
	assert.Equal(t, before, ids(all))
}
