package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product - базовая модель товара. Черновики (is_published=false) видны
// только через админские запросы; публичная выдача всегда фильтруется.
type Product struct {
	gorm.Model
	Name        string          `json:"name" gorm:"type:varchar(255);not null"`
	Slug        string          `json:"slug" gorm:"type:varchar(255);not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Images      datatypes.JSON  `json:"images" gorm:"type:jsonb"`
	CategoryID  *uint           `json:"category_id" gorm:"index"`
	IsPublished bool            `json:"is_published" gorm:"default:false;index"`

	Category *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags     []Tag          `json:"tags,omitempty" gorm:"many2many:product_tags;"`
	Detail   *ProductDetail `json:"detail,omitempty" gorm:"foreignKey:ProductID"`
}

// PriceBucket - ценовой диапазон для фильтрации листинга
type PriceBucket string

const (
	PriceBucketLow       PriceBucket = "low"       // до 1000
	PriceBucketMedium    PriceBucket = "medium"    // 1000 - 5000
	PriceBucketHigh      PriceBucket = "high"      // 5000 - 10000
	PriceBucketExpensive PriceBucket = "expensive" // свыше 10000
)

var (
	priceMedium    = decimal.NewFromInt(1000)
	priceHigh      = decimal.NewFromInt(5000)
	priceExpensive = decimal.NewFromInt(10000)
)

// BucketForPrice относит цену к одному из четырёх диапазонов.
// Границы полуоткрытые: [0,1000), [1000,5000), [5000,10000), [10000,∞).
func BucketForPrice(price decimal.Decimal) PriceBucket {
	switch {
	case price.LessThan(priceMedium):
		return PriceBucketLow
	case price.LessThan(priceHigh):
		return PriceBucketMedium
	case price.LessThan(priceExpensive):
		return PriceBucketHigh
	default:
		return PriceBucketExpensive
	}
}

// ParsePriceBucket возвращает границы диапазона по его имени.
// nil-границы означают отсутствие ограничения с соответствующей стороны.
func ParsePriceBucket(name string) (min, max *decimal.Decimal, ok bool) {
	switch PriceBucket(name) {
	case PriceBucketLow:
		return nil, &priceMedium, true
	case PriceBucketMedium:
		return &priceMedium, &priceHigh, true
	case PriceBucketHigh:
		return &priceHigh, &priceExpensive, true
	case PriceBucketExpensive:
		return &priceExpensive, nil, true
	}
	return nil, nil, false
}
