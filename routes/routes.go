package routes

import (
	"brandstack/config"
	"brandstack/controllers"
	"brandstack/middleware"
	"brandstack/services/catalog"
	"brandstack/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	// CORS middleware ДО роутов
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://brandstack.uz", "https://www.brandstack.uz"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Загруженные файлы (фото товаров и пользователей)
	r.Static("/uploads", cfg.UploadDir)

	db := utils.GetDB()
	rdb := utils.GetRedis()

	// Сервисы каталога
	productService := catalog.NewProductService(db)
	taxonomyService := catalog.NewTaxonomyService(db)
	reviewService := catalog.NewReviewService(db)
	reactionService := catalog.NewReactionService(db)
	collectionService := catalog.NewCollectionService(db)

	// Контроллеры
	site := config.LoadSite()
	userController := controllers.NewUserController(rdb)
	userProfileController := controllers.NewUserProfileController(cfg)
	homeController := controllers.NewHomeController(site, collectionService, taxonomyService)
	catalogController := controllers.NewCatalogController(productService, taxonomyService, reactionService)
	reviewController := controllers.NewReviewController(productService, reviewService)
	reactionController := controllers.NewReactionController(productService, reactionService)

	// Аутентификация
	r.POST("/auth/register", userController.Register)
	r.POST("/auth/confirm-otp", userController.ConfirmOTP)
	r.POST("/auth/login", userController.Login)
	r.POST("/auth/refresh", userController.Refresh)
	r.POST("/auth/forgot-password", userController.ForgotPassword)
	r.POST("/auth/reset-password", userController.ResetPassword)
	r.GET("/auth/google", userController.GoogleLogin)
	r.GET("/auth/google/callback", userController.GoogleCallback)
	r.POST("/auth/google/complete", userController.GoogleComplete)
	r.POST("/auth/logout", middleware.JWTAuthMiddleware(), userController.Logout)

	// Главная страница и подборки
	r.GET("/", homeController.Index)
	r.GET("/collections", homeController.Collections)
	r.GET("/collections/:slug", homeController.Collection)

	// Каталог
	SetupCatalogRoutes(r, catalogController, reviewController, reactionController)

	// Личный кабинет
	userGroup := r.Group("/user", middleware.JWTAuthMiddleware())
	{
		userGroup.GET("/profile", userProfileController.GetProfile)
		userGroup.PUT("/profile", userProfileController.UpdateProfile)
		userGroup.POST("/profile/photo", userProfileController.UploadPhoto)
		userGroup.POST("/change-password", userProfileController.ChangePassword)
	}

	// Админка
	SetupAdminRoutes(r, cfg, db, productService, taxonomyService, collectionService)

	return r
}
