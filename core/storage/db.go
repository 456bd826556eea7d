package storage

import (
	"context"

	"gorm.io/gorm"

	storageRepo "storefront.GO/model/repository/storage"
)

// DB persists storage keys in the storefront_storage table.
type DB struct {
	repo *storageRepo.StorageRepository
}

// NewDB migrates the storage table and returns the backend.
func NewDB(db *gorm.DB) (*DB, error) {
	repo := storageRepo.NewStorageRepository(db)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return &DB{repo: repo}, nil
}

func (s *DB) Get(_ context.Context, key string) (string, bool, error) {
	return s.repo.Find(key)
}

func (s *DB) Set(_ context.Context, key, value string) error {
	return s.repo.Put(key, value)
}

func (s *DB) Remove(_ context.Context, key string) error {
	return s.repo.Delete(key)
}

// Keys lists the stored keys starting with prefix.
func (s *DB) Keys(prefix string) ([]string, error) {
	return s.repo.Keys(prefix)
}
