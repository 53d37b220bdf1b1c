package models

import "gorm.io/gorm"

// Category - товарная категория (женская одежда, обувь и т.д.).
// Удаление категории, на которую ссылается хотя бы один товар, запрещено
// ограничением RESTRICT на products.category_id.
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"type:varchar(100);not null"`
	Slug        string `json:"slug" gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string `json:"description" gorm:"type:text"`
}
