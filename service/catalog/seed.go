package catalog

import (
	"fmt"

	"gorm.io/gorm"

	"storefront.GO/catalog"
	catalogEntity "storefront.GO/model/entity/catalog"
	productRepo "storefront.GO/model/repository/product"
)

// SeedFixture writes the embedded fixture catalog into the products table, replacing rows with
// the same ids. It returns the number of products written.
func SeedFixture(db *gorm.DB) (int, error) {
	c, err := catalog.Fixture()
	if err != nil {
		return 0, err
	}
	repo := productRepo.NewProductRepository(db)
	if err := repo.Migrate(); err != nil {
		return 0, fmt.Errorf("migrate products: %w", err)
	}
	all := c.All()
	rows := make([]catalogEntity.Product, len(all))
	for i, p := range all {
		rows[i] = catalog.ToEntity(p, i)
	}
	if err := repo.UpsertBatch(rows, 100); err != nil {
		return 0, fmt.Errorf("seed products: %w", err)
	}
	return len(rows), nil
}
