package models

import "gorm.io/gorm"

// Review - отзыв пользователя о товаре. Не более одного отзыва на пару
// (товар, пользователь) - обеспечивается составным уникальным индексом.
// Редактирование и удаление отзывов пользователю не доступны.
type Review struct {
	gorm.Model
	ProductID uint   `json:"product_id" gorm:"not null;uniqueIndex:idx_reviews_product_user"`
	UserID    uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_reviews_product_user"`
	Text      string `json:"text" gorm:"type:text;not null"`
	Rating    int    `json:"rating" gorm:"not null"`

	Product Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	User    User    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

const (
	ReviewTextMinLen = 10
	ReviewTextMaxLen = 1000
	RatingMin        = 1
	RatingMax        = 5
)
