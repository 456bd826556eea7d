package product

import (
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogEntity "storefront.GO/model/entity/catalog"
)

var ErrNotFound = errors.New("product not found")

type ProductRepository struct {
	db *gorm.DB
}

var (
	productRepoInstance *ProductRepository
	productRepoOnce     sync.Once
)

// GetProductRepository returns the process-wide repository for db (created once).
func GetProductRepository(db *gorm.DB) *ProductRepository {
	productRepoOnce.Do(func() {
		productRepoInstance = NewProductRepository(db)
	})
	return productRepoInstance
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Migrate() error {
	return r.db.AutoMigrate(&catalogEntity.Product{})
}

// FindAll returns every product in catalog order.
func (r *ProductRepository) FindAll() ([]catalogEntity.Product, error) {
	var products []catalogEntity.Product
	err := r.db.Order("position ASC, id ASC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id string) (*catalogEntity.Product, error) {
	var p catalogEntity.Product
	err := r.db.Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ExistingIDs returns which of ids are already stored.
func (r *ProductRepository) ExistingIDs(ids []string) (map[string]bool, error) {
	out := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var found []string
	if err := r.db.Model(&catalogEntity.Product{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	for _, id := range found {
		out[id] = true
	}
	return out, nil
}

// UpsertBatch inserts or fully replaces products, batchSize rows per statement.
func (r *ProductRepository) UpsertBatch(products []catalogEntity.Product, batchSize int) error {
	if len(products) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).CreateInBatches(&products, batchSize).Error
}

func (r *ProductRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&catalogEntity.Product{}).Count(&n).Error
	return n, err
}
