package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string     `json:"username" gorm:"type:varchar(150);uniqueIndex;not null"`
	Email     string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string     `json:"-"`
	FirstName string     `json:"first_name" gorm:"type:varchar(150)"`
	LastName  string     `json:"last_name" gorm:"type:varchar(150)"`
	DateBirth *time.Time `json:"date_birth" gorm:"type:date"`
	Photo     string     `json:"photo" gorm:"type:text"`
	Role      string     `json:"role" gorm:"type:varchar(20);default:user"`
	Confirmed bool       `json:"confirmed" gorm:"default:false"`
	GoogleID  *string    `json:"-" gorm:"uniqueIndex"`
}
