// Package resolvers maps catalog and listing values onto the GraphQL schema types.
package resolvers

import (
	gql "github.com/graph-gophers/graphql-go"

	"storefront.GO/catalog"
)

type Product struct {
	p catalog.Product
}

func NewProduct(p catalog.Product) *Product {
	return &Product{p: p}
}

func NewProducts(products []catalog.Product) []*Product {
	out := make([]*Product, len(products))
	for i, p := range products {
		out[i] = NewProduct(p)
	}
	return out
}

func (r *Product) ID() gql.ID              { return gql.ID(r.p.ID) }
func (r *Product) Name() string            { return r.p.Name }
func (r *Product) Brand() string           { return r.p.Brand }
func (r *Product) Category() string        { return r.p.Category }
func (r *Product) Price() float64          { return r.p.Price }
func (r *Product) DiscountPrice() *float64 { return r.p.DiscountPrice }
func (r *Product) EffectivePrice() float64 { return r.p.EffectivePrice() }
func (r *Product) RatingValue() float64    { return r.p.RatingValue }
func (r *Product) RatingCount() int32      { return int32(r.p.RatingCount) }
func (r *Product) IsHot() bool             { return r.p.IsHot }
func (r *Product) Colors() []string        { return r.p.Colors }
func (r *Product) ImageURL() string        { return r.p.ImageURL }

func (r *Product) DiscountPercent() *int32 {
	if r.p.DiscountPercent == nil {
		return nil
	}
	v := int32(*r.p.DiscountPercent)
	return &v
}
