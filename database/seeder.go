package database

import (
	"os"

	"brandstack/models"
	"brandstack/utils"

	"gorm.io/gorm"
)

// SeedCategories проверяет таблицу categories и, если она пуста,
// заполняет её базовыми категориями витрины
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Категории уже есть, ничего не делаем
	}
	categories := []models.Category{
		{Name: "Женская одежда", Slug: "zhenskaya-odezhda"},
		{Name: "Мужская одежда", Slug: "muzhskaya-odezhda"},
		{Name: "Детская одежда", Slug: "detskaya-odezhda"},
		{Name: "Обувь", Slug: "obuv"},
		{Name: "Аксессуары", Slug: "aksessuary"},
	}
	return db.Create(&categories).Error
}

// SeedAdmin создаёт администратора, если в системе ещё нет ни одного.
// Учётные данные берутся из окружения, без них сидирование пропускается.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{
		Username:  "admin",
		Email:     email,
		Password:  hash,
		Role:      "admin",
		Confirmed: true,
	}
	return db.Create(&admin).Error
}
