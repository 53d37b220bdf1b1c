package models

import "github.com/shopspring/decimal"

// ProductDetail - дополнительная информация о товаре (связь один-к-одному).
// Удаляется каскадно вместе с товаром.
type ProductDetail struct {
	ProductID        uint             `json:"-" gorm:"primaryKey"`
	Size             string           `json:"size" gorm:"type:varchar(50)"`
	Material         string           `json:"material" gorm:"type:varchar(100)"`
	Color            string           `json:"color" gorm:"type:varchar(50)"`
	Weight           *decimal.Decimal `json:"weight" gorm:"type:decimal(8,2)"`
	CareInstructions string           `json:"care_instructions" gorm:"type:text"`
	Manufacturer     string           `json:"manufacturer" gorm:"type:varchar(100)"`
	CountryOrigin    string           `json:"country_origin" gorm:"type:varchar(50)"`
	ProductionYear   *int             `json:"production_year"`
	WarrantyPeriod   string           `json:"warranty_period" gorm:"type:varchar(50)"`
	SKU              string           `json:"sku" gorm:"type:varchar(50)"`
	Barcode          string           `json:"barcode" gorm:"type:varchar(50)"`
}

func (ProductDetail) TableName() string {
	return "product_details"
}
