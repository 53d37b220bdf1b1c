package database

import (
	"brandstack/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Product{},
		&models.ProductDetail{},
		&models.Collection{},
		&models.Review{},
		&models.Reaction{},
	); err != nil {
		return err
	}

	// Категорию с товарами удалить нельзя (PROTECT из исходной схемы)
	if err := db.Exec(`
		ALTER TABLE products
		DROP CONSTRAINT IF EXISTS fk_products_category
	`).Error; err != nil {
		return err
	}
	if err := db.Exec(`
		ALTER TABLE products
		ADD CONSTRAINT fk_products_category
		FOREIGN KEY (category_id) REFERENCES categories(id)
		ON DELETE RESTRICT
	`).Error; err != nil {
		return err
	}

	// Отзывы и реакции живут и умирают вместе с товаром и пользователем
	for _, ddl := range []string{
		`ALTER TABLE reviews DROP CONSTRAINT IF EXISTS fk_reviews_product`,
		`ALTER TABLE reviews ADD CONSTRAINT fk_reviews_product
			FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE`,
		`ALTER TABLE reviews DROP CONSTRAINT IF EXISTS fk_reviews_user`,
		`ALTER TABLE reviews ADD CONSTRAINT fk_reviews_user
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE`,
		`ALTER TABLE reactions DROP CONSTRAINT IF EXISTS fk_reactions_product`,
		`ALTER TABLE reactions ADD CONSTRAINT fk_reactions_product
			FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE`,
		`ALTER TABLE reactions DROP CONSTRAINT IF EXISTS fk_reactions_user`,
		`ALTER TABLE reactions ADD CONSTRAINT fk_reactions_user
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			return err
		}
	}

	// Уникальность slug'а только среди живых строк: мягко удалённый
	// товар не должен занимать адрес до конца ретенции
	for _, ddl := range []string{
		`DROP INDEX IF EXISTS idx_products_slug`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_products_slug_live
			ON products (slug) WHERE deleted_at IS NULL`,
		`DROP INDEX IF EXISTS idx_collections_slug`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_collections_slug_live
			ON collections (slug) WHERE deleted_at IS NULL`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			return err
		}
	}

	// Индекс под сортировку листинга каталога
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_products_created_at
		ON products (created_at DESC)
	`).Error
}
