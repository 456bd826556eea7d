package catalog

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/catalog"
	"storefront.GO/listing"
	"storefront.GO/promo"
)

// CanonicalQueryHeader carries the query string the client should replace its URL with.
const CanonicalQueryHeader = "X-Canonical-Query"

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// ListingResponse is one page of a product listing with the state it was derived from.
type ListingResponse struct {
	listing.Result
	State listing.State `json:"state"`
	Query string        `json:"query"`
	Links listing.Links `json:"links"`
	Pages []int         `json:"pageWindow"`
}

func RegisterCatalogRoutes(apiGroup *echo.Group, d *api.Deps) {
	pageSize := d.PageSize
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}

	// GET /api/products?brands=Nike,Adidas&sort=price-asc&page=2
	apiGroup.GET("/products", func(c echo.Context) error {
		state := listing.DecodeValues(c.QueryParams())
		return respondListing(c, d.Catalog.All(), state, pageSize)
	})

	// GET /api/categories/:category/products – category page; the category is preselected
	// unless the query names its own categories.
	apiGroup.GET("/categories/:category/products", func(c echo.Context) error {
		params := c.QueryParams()
		state := listing.DecodeValues(params)
		if !params.Has(listing.KeyCategories) {
			state.Filters.Categories = []string{c.Param("category")}
		}
		return respondListing(c, d.Catalog.All(), state, pageSize)
	})

	apiGroup.GET("/products/:id", func(c echo.Context) error {
		p, err := d.Catalog.ByID(c.Param("id"))
		if errors.Is(err, catalog.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, p)
	})

	// GET /api/facets?category=bags
	apiGroup.GET("/facets", func(c echo.Context) error {
		products := d.Catalog.All()
		if category := c.QueryParam("category"); category != "" {
			products = d.Catalog.Category(category)
		}
		return c.JSON(http.StatusOK, listing.CountFacets(products))
	})

	apiGroup.GET("/deals", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"sections":  listing.Deals(d.Catalog.All()),
			"endsIn":    promo.FlashSale.Clock(),
			"endsInSec": promo.FlashSale.Seconds(),
		})
	})
}

func respondListing(c echo.Context, products []catalog.Product, state listing.State, pageSize int) error {
	view := listing.NewView(state)
	res := view.Result(products, pageSize)
	query := view.Query()

	c.Response().Header().Set(CanonicalQueryHeader, query)
	return c.JSON(http.StatusOK, ListingResponse{
		Result: res,
		State:  view.State(),
		Query:  query,
		Links:  view.Links(res.TotalPages),
		Pages:  listing.PageWindow(view.State().Page, res.TotalPages),
	})
}
