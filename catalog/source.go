package catalog

import (
	"fmt"

	"gorm.io/gorm"

	catalogEntity "storefront.GO/model/entity/catalog"
	productRepo "storefront.GO/model/repository/product"
)

// FromEntity maps a products-table row to a Product.
func FromEntity(e catalogEntity.Product) Product {
	p := Product{
		ID:          e.ID,
		Name:        e.Name,
		Brand:       e.Brand,
		Category:    e.Category,
		Price:       e.Price,
		RatingValue: e.RatingValue,
		RatingCount: e.RatingCount,
		IsHot:       e.IsHot,
		Colors:      []string(e.Colors),
		ImageURL:    e.ImageURL,
	}
	if e.DiscountPrice != nil {
		v := *e.DiscountPrice
		p.DiscountPrice = &v
	}
	if e.DiscountPercent != nil {
		v := *e.DiscountPercent
		p.DiscountPercent = &v
	}
	return p
}

// ToEntity maps a Product to a products-table row; position keeps catalog order.
func ToEntity(p Product, position int) catalogEntity.Product {
	e := catalogEntity.Product{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Price:       p.Price,
		RatingValue: p.RatingValue,
		RatingCount: p.RatingCount,
		IsHot:       p.IsHot,
		Colors:      append([]string(nil), p.Colors...),
		ImageURL:    p.ImageURL,
		Position:    position,
	}
	if p.DiscountPrice != nil {
		v := *p.DiscountPrice
		e.DiscountPrice = &v
	}
	if p.DiscountPercent != nil {
		v := *p.DiscountPercent
		e.DiscountPercent = &v
	}
	return e
}

// FromDB loads the catalog from the products table.
func FromDB(db *gorm.DB) (*Catalog, error) {
	repo := productRepo.NewProductRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate products: %w", err)
	}
	rows, err := repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	products := make([]Product, len(rows))
	for i, r := range rows {
		products[i] = FromEntity(r)
	}
	return New(products)
}

// Load returns the catalog for source: "db" reads the products table, anything else the
// embedded fixture.
func Load(source string, db *gorm.DB) (*Catalog, error) {
	if source == "db" {
		if db == nil {
			return nil, fmt.Errorf("catalog source db: no database")
		}
		return FromDB(db)
	}
	return Fixture()
}
