package catalog

import "gorm.io/datatypes"

// Product represents the storefront_product table
type Product struct {
	ID              string                      `gorm:"column:id;primaryKey;type:varchar(64)" json:"id"`
	Name            string                      `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Brand           string                      `gorm:"column:brand;type:varchar(128);index" json:"brand"`
	Category        string                      `gorm:"column:category;type:varchar(128);index" json:"category"`
	Price           float64                     `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	DiscountPrice   *float64                    `gorm:"column:discount_price;type:decimal(12,2)" json:"discount_price,omitempty"`
	DiscountPercent *int                        `gorm:"column:discount_percent" json:"discount_percent,omitempty"`
	RatingValue     float64                     `gorm:"column:rating_value;type:decimal(3,2);not null;default:0" json:"rating_value"`
	RatingCount     int                         `gorm:"column:rating_count;not null;default:0" json:"rating_count"`
	IsHot           bool                        `gorm:"column:is_hot;not null;default:false" json:"is_hot"`
	Colors          datatypes.JSONSlice[string] `gorm:"column:colors" json:"colors"`
	ImageURL        string                      `gorm:"column:image_url;type:varchar(512)" json:"image_url"`
	Position        int                         `gorm:"column:position;not null;default:0" json:"position"`
}

func (Product) TableName() string {
	return "storefront_product"
}
