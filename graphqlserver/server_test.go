package graphqlserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront.GO/catalog"
	"storefront.GO/graphql/registry"
)

func exec(t *testing.T, query string, vars map[string]interface{}) map[string]interface{} {
	t.Helper()
	schema, err := NewSchema(catalog.MustFixture(), 6)
	require.NoError(t, err)
	resp := schema.Exec(context.Background(), query, "", vars)
	require.Empty(t, resp.Errors)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	return out
}

func TestProducts_FilteredListing(t *testing.T) {
	out := exec(t, `{ products(brands: ["Nike"], sort: "price-asc") {
		items { id effectivePrice } page pageSize totalPages totalCount query } }`, nil)

	listing := out["products"].(map[string]interface{})
	assert.EqualValues(t, 4, listing["totalCount"])
	assert.EqualValues(t, 1, listing["totalPages"])
	assert.EqualValues(t, 1, listing["page"])
	assert.EqualValues(t, 6, listing["pageSize"])
	assert.Equal(t, "?brands=Nike&sort=price-asc", listing["query"])

	items := listing["items"].([]interface{})
	require.Len(t, items, 4)
	prev := 0.0
	for _, it := range items {
		price := it.(map[string]interface{})["effectivePrice"].(float64)
		assert.GreaterOrEqual(t, price, prev)
		prev = price
	}
}

func TestProducts_DefaultsAndPageSize(t *testing.T) {
	out := exec(t, `{ products(page: 2, pageSize: 10) { items { id } page totalPages } }`, nil)

	listing := out["products"].(map[string]interface{})
	assert.EqualValues(t, 2, listing["page"])
	assert.EqualValues(t, 3, listing["totalPages"])
	assert.Len(t, listing["items"], 10)
}

func TestProduct_ByID(t *testing.T) {
	out := exec(t, `{ product(id: "1") { id name brand discountPrice discountPercent colors isHot } }`, nil)
	p := out["product"].(map[string]interface{})
	assert.Equal(t, "1", p["id"])
	assert.Equal(t, "Nike", p["brand"])
	assert.EqualValues(t, 120, p["discountPrice"])
	assert.EqualValues(t, 20, p["discountPercent"])
	assert.Equal(t, []interface{}{"black", "white", "red"}, p["colors"])
	assert.Equal(t, true, p["isHot"])

	out = exec(t, `{ product(id: "nope") { id } }`, nil)
	assert.Nil(t, out["product"])
}

func TestFacets_Category(t *testing.T) {
	out := exec(t, `{ facets(category: "sneakers") { total brands { value count } } }`, nil)
	f := out["facets"].(map[string]interface{})
	assert.EqualValues(t, 10, f["total"])
	assert.Contains(t, f["brands"], map[string]interface{}{"value": "Nike", "count": float64(3)})
}

func TestDeals(t *testing.T) {
	out := exec(t, `{ deals { key title products { id } } }`, nil)
	sections := out["deals"].([]interface{})
	require.Len(t, sections, 3)
	first := sections[0].(map[string]interface{})
	assert.Equal(t, "lightning", first["key"])
	assert.Len(t, first["products"], 8)
}

func TestExtension(t *testing.T) {
	defer registry.Unregister("echo")
	registry.Register("echo", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return args, nil
	})

	out := exec(t, `{ _extension(name: "echo", args: "{\"a\":1}") }`, nil)
	assert.JSONEq(t, `{"a":1}`, out["_extension"].(string))
}
