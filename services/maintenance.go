package services

import (
	"log"
	"time"

	"brandstack/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Записи, удалённые администратором, хранятся мягко ещё 90 дней и только
// потом вычищаются окончательно
const purgeRetention = 90 * 24 * time.Hour

func purgeSoftDeleted(db *gorm.DB) {
	cutoff := time.Now().Add(-purgeRetention)

	// Товары вычищаются жёстко, отзывы и реакции уходят каскадом по FK
	res := db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Product{})
	if res.Error != nil {
		log.Printf("purge products failed: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("purged %d soft-deleted products", res.RowsAffected)
	}

	res = db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Collection{})
	if res.Error != nil {
		log.Printf("purge collections failed: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("purged %d soft-deleted collections", res.RowsAffected)
	}
}

// StartPurgeCron запускает ежедневную чистку давно удалённых записей
func StartPurgeCron(db *gorm.DB) {
	purgeSoftDeleted(db)

	c := cron.New()
	c.AddFunc("0 3 * * *", func() { // Каждый день в 03:00
		purgeSoftDeleted(db)
	})
	c.Start()
}
