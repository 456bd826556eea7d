package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	storageEntity "storefront.GO/model/entity/storage"
)

type StorageRepository struct {
	db *gorm.DB
}

func NewStorageRepository(db *gorm.DB) *StorageRepository {
	return &StorageRepository{db: db}
}

// Migrate creates the storage table.
func (r *StorageRepository) Migrate() error {
	return r.db.AutoMigrate(&storageEntity.Item{})
}

// Find returns the value stored under key; found is false when the key does not exist.
func (r *StorageRepository) Find(key string) (value string, found bool, err error) {
	var item storageEntity.Item
	err = r.db.Where("storage_key = ?", key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return item.Value, true, nil
}

// Put upserts key.
func (r *StorageRepository) Put(key, value string) error {
	item := storageEntity.Item{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&item).Error
}

func (r *StorageRepository) Delete(key string) error {
	return r.db.Where("storage_key = ?", key).Delete(&storageEntity.Item{}).Error
}

// Keys lists stored keys with the given prefix.
func (r *StorageRepository) Keys(prefix string) ([]string, error) {
	var keys []string
	err := r.db.Model(&storageEntity.Item{}).
		Where("storage_key LIKE ?", prefix+"%").
		Order("storage_key").
		Pluck("storage_key", &keys).Error
	return keys, err
}
