package resolvers

import (
	"context"
	"errors"

	gql "github.com/graph-gophers/graphql-go"

	"storefront.GO/catalog"
	"storefront.GO/listing"
)

// MaxPageSize bounds the pageSize argument.
const MaxPageSize = 100

// ProductsArgs matches the products query arguments. Nil means "use the default".
type ProductsArgs struct {
	Brands     *[]string
	Colors     *[]string
	Categories *[]string
	MinPrice   *int32
	MaxPrice   *int32
	Sort       *string
	Page       *int32
	PageSize   *int32
}

// State folds the arguments into a listing state the same way a query string is decoded.
func (a ProductsArgs) State() listing.State {
	s := listing.DefaultState()
	if a.Brands != nil {
		s.Filters.Brands = *a.Brands
	}
	if a.Colors != nil {
		s.Filters.Colors = *a.Colors
	}
	if a.Categories != nil {
		s.Filters.Categories = *a.Categories
	}
	if a.MinPrice != nil {
		s.Filters.MinPrice = int(*a.MinPrice)
	}
	if a.MaxPrice != nil {
		s.Filters.MaxPrice = int(*a.MaxPrice)
	}
	if a.Sort != nil {
		s.Sort = listing.ParseSort(*a.Sort)
	}
	if a.Page != nil && *a.Page > 0 {
		s.Page = int(*a.Page)
	}
	return s
}

// Query resolves the read-only catalog fields.
type Query struct {
	Catalog  *catalog.Catalog
	PageSize int
}

func (q *Query) Products(ctx context.Context, args ProductsArgs) *ProductListing {
	size := q.PageSize
	if args.PageSize != nil && *args.PageSize > 0 {
		size = min(int(*args.PageSize), MaxPageSize)
	}
	if size <= 0 {
		size = listing.DefaultPageSize
	}
	view := listing.NewView(args.State())
	return NewProductListing(view.Result(q.Catalog.All(), size), view.Query())
}

func (q *Query) Product(ctx context.Context, args struct{ ID gql.ID }) (*Product, error) {
	p, err := q.Catalog.ByID(string(args.ID))
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return NewProduct(p), nil
}

func (q *Query) Facets(ctx context.Context, args struct{ Category *string }) *Facets {
	if args.Category != nil && *args.Category != "" {
		return NewFacets(q.Catalog.Category(*args.Category))
	}
	return NewFacets(q.Catalog.All())
}

func (q *Query) Deals(ctx context.Context) []*DealSection {
	return NewDealSections(q.Catalog.All())
}
