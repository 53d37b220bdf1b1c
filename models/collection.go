package models

import "gorm.io/gorm"

// Collection - подборка товаров для главной страницы (The North Face,
// Levis и т.д.). Публикуется администратором, публичная выдача только
// опубликованных.
type Collection struct {
	gorm.Model
	Title       string `json:"title" gorm:"type:varchar(255);not null"`
	Slug        string `json:"slug" gorm:"type:varchar(255);not null"`
	Content     string `json:"content" gorm:"type:text"`
	Image       string `json:"image" gorm:"type:text"`
	IsPublished bool   `json:"is_published" gorm:"default:false;index"`
}
