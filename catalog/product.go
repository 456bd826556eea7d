package catalog

import "math"

// Product is an immutable catalog record.
type Product struct {
	ID              string   `yaml:"id" json:"id"`
	Name            string   `yaml:"name" json:"name"`
	Brand           string   `yaml:"brand" json:"brand"`
	Category        string   `yaml:"category" json:"category"`
	Price           float64  `yaml:"price" json:"price"`
	DiscountPrice   *float64 `yaml:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	DiscountPercent *int     `yaml:"discountPercent,omitempty" json:"discountPercent,omitempty"`
	RatingValue     float64  `yaml:"ratingValue" json:"ratingValue"`
	RatingCount     int      `yaml:"ratingCount" json:"ratingCount"`
	IsHot           bool     `yaml:"isHot,omitempty" json:"isHot"`
	Colors          []string `yaml:"colors" json:"colors"`
	ImageURL        string   `yaml:"imageUrl" json:"imageUrl"`
}

// Clone returns a deep copy of p sharing no slice or pointer with it.
func (p Product) Clone() Product {
	p.Colors = append([]string(nil), p.Colors...)
	if p.DiscountPrice != nil {
		v := *p.DiscountPrice
		p.DiscountPrice = &v
	}
	if p.DiscountPercent != nil {
		v := *p.DiscountPercent
		p.DiscountPercent = &v
	}
	return p
}

// EffectivePrice is the discounted price when one is set, else the list price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// EffectiveCents is EffectivePrice in integer cents.
func (p Product) EffectiveCents() int64 {
	return ToCents(p.EffectivePrice())
}

func (p Product) Discounted() bool {
	return p.DiscountPrice != nil
}

// Percent returns the discount percentage, 0 when none is set.
func (p Product) Percent() int {
	if p.DiscountPercent == nil {
		return 0
	}
	return *p.DiscountPercent
}

func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// ToCents rounds a price to whole cents.
func ToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// FromCents converts cents back to a price.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
