package models

import "gorm.io/gorm"

// Tag - тег товара, связь многие-ко-многим через product_tags
type Tag struct {
	gorm.Model
	Name string `json:"name" gorm:"type:varchar(100);not null"`
	Slug string `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
}
