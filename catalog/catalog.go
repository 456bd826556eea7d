// Package catalog holds the immutable product list every listing, cart and API reads from.
package catalog

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("product not found")

// Catalog is a read-only, ordered product list with an id index.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// New builds a catalog from products. Ids must be unique and non-empty; prices positive;
// every product needs at least one color.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product #%d: empty id", i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %s: duplicate id", p.ID)
		}
		if p.Price <= 0 {
			return nil, fmt.Errorf("product %s: price must be positive", p.ID)
		}
		if len(p.Colors) == 0 {
			return nil, fmt.Errorf("product %s: no colors", p.ID)
		}
		c.products[i] = p.Clone()
		c.byID[p.ID] = i
	}
	return c, nil
}

// All returns deep copies of the products in catalog order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.Clone()
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}

func (c *Catalog) ByID(id string) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.products[i].Clone(), nil
}

// Category returns the products of one category in catalog order.
func (c *Catalog) Category(category string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p.Clone())
		}
	}
	return out
}
