package storage

import "time"

// Item is one key of the persisted client storage (the "local storage" of a session).
type Item struct {
	Key       string    `gorm:"column:storage_key;primaryKey;type:varchar(255)" json:"key"`
	Value     string    `gorm:"column:value;type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Item) TableName() string {
	return "storefront_storage"
}
