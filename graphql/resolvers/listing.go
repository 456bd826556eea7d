package resolvers

import (
	"storefront.GO/catalog"
	"storefront.GO/listing"
)

type ProductListing struct {
	res   listing.Result
	query string
}

func NewProductListing(res listing.Result, query string) *ProductListing {
	return &ProductListing{res: res, query: query}
}

func (r *ProductListing) Items() []*Product { return NewProducts(r.res.Items) }
func (r *ProductListing) Page() int32       { return int32(r.res.Page) }
func (r *ProductListing) PageSize() int32   { return int32(r.res.PageSize) }
func (r *ProductListing) TotalPages() int32 { return int32(r.res.TotalPages) }
func (r *ProductListing) TotalCount() int32 { return int32(r.res.TotalCount) }
func (r *ProductListing) Query() string     { return r.query }

type Facet struct {
	f listing.Facet
}

func (r *Facet) Value() string { return r.f.Value }
func (r *Facet) Count() int32  { return int32(r.f.Count) }

func newFacets(fs []listing.Facet) []*Facet {
	out := make([]*Facet, len(fs))
	for i, f := range fs {
		out[i] = &Facet{f: f}
	}
	return out
}

type Facets struct {
	f listing.Facets
}

func NewFacets(products []catalog.Product) *Facets {
	return &Facets{f: listing.CountFacets(products)}
}

func (r *Facets) Categories() []*Facet { return newFacets(r.f.Categories) }
func (r *Facets) Brands() []*Facet     { return newFacets(r.f.Brands) }
func (r *Facets) Colors() []*Facet     { return newFacets(r.f.Colors) }
func (r *Facets) MinPrice() float64    { return r.f.MinPrice }
func (r *Facets) MaxPrice() float64    { return r.f.MaxPrice }
func (r *Facets) Total() int32         { return int32(r.f.Total) }

type DealSection struct {
	s listing.DealSection
}

func NewDealSections(products []catalog.Product) []*DealSection {
	sections := listing.Deals(products)
	out := make([]*DealSection, len(sections))
	for i, s := range sections {
		out[i] = &DealSection{s: s}
	}
	return out
}

func (r *DealSection) Key() string          { return r.s.Key }
func (r *DealSection) Title() string        { return r.s.Title }
func (r *DealSection) Products() []*Product { return NewProducts(r.s.Products) }
