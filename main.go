package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"brandstack/config"
	"brandstack/controllers"
	"brandstack/database"
	"brandstack/routes"
	"brandstack/services"
	"brandstack/utils"
)

func main() {
	// Часовой пояс Узбекистана для всех логов
	uzbekLocation, err := time.LoadLocation("Asia/Tashkent")
	if err != nil {
		uzbekLocation = time.FixedZone("UZT", 5*60*60)
	}
	time.Local = uzbekLocation

	// Конфиг (.env или переменные окружения)
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Printf("failed to init file logger: %v", err)
	}

	// Подключение к PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	// Глобальный *gorm.DB для middleware и утилит
	utils.SetDB(db)

	// Миграция
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	// Сидирование категорий и администратора
	if err := database.SeedCategories(db); err != nil {
		log.Fatalf("failed to seed categories: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	log.Println("Seeding complete (if needed)")

	// Подключение к Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	utils.SetRedis(rdb)
	log.Println("Connected to Redis")

	// Инициализация Google OAuth
	controllers.InitGoogleOAuth()

	// Ночная чистка давно удалённых записей
	go func() {
		services.StartPurgeCron(db)
		log.Println("Purge cron started")
	}()

	r := routes.SetupRouter(cfg)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
