package routes

import (
	"brandstack/config"
	"brandstack/controllers/admin"
	"brandstack/middleware"
	"brandstack/services/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes настраивает админские маршруты (JWT + роль admin)
func SetupAdminRoutes(r *gin.Engine, cfg *config.Config, db *gorm.DB,
	products *catalog.ProductService, taxonomy *catalog.TaxonomyService,
	collections *catalog.CollectionService) {

	productAdmin := admin.NewProductAdminController(products, cfg)
	taxonomyAdmin := admin.NewTaxonomyAdminController(taxonomy)
	collectionAdmin := admin.NewCollectionAdminController(collections, cfg)
	userAdmin := admin.NewUserAdminController(db)

	adminGroup := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())
	{
		// Товары
		adminGroup.GET("/products", productAdmin.List)
		adminGroup.POST("/products", productAdmin.Create)
		adminGroup.GET("/products/:id", productAdmin.Get)
		adminGroup.PUT("/products/:id", productAdmin.Update)
		adminGroup.DELETE("/products/:id", productAdmin.Delete)
		adminGroup.POST("/products/publish", productAdmin.Publish)
		adminGroup.POST("/products/draft", productAdmin.Draft)
		adminGroup.POST("/products/:id/images", productAdmin.UploadImage)

		// Категории и теги
		adminGroup.POST("/categories", taxonomyAdmin.CreateCategory)
		adminGroup.PUT("/categories/:id", taxonomyAdmin.UpdateCategory)
		adminGroup.DELETE("/categories/:id", taxonomyAdmin.DeleteCategory)
		adminGroup.POST("/tags", taxonomyAdmin.CreateTag)
		adminGroup.PUT("/tags/:id", taxonomyAdmin.UpdateTag)
		adminGroup.DELETE("/tags/:id", taxonomyAdmin.DeleteTag)

		// Подборки
		adminGroup.GET("/collections", collectionAdmin.List)
		adminGroup.POST("/collections", collectionAdmin.Create)
		adminGroup.PUT("/collections/:id", collectionAdmin.Update)
		adminGroup.DELETE("/collections/:id", collectionAdmin.Delete)
		adminGroup.POST("/collections/publish", collectionAdmin.Publish)
		adminGroup.POST("/collections/draft", collectionAdmin.Draft)
		adminGroup.POST("/collections/:id/image", collectionAdmin.UploadImage)

		// Пользователи
		adminGroup.GET("/users", userAdmin.UsersList)
		adminGroup.DELETE("/users", userAdmin.DeleteUser)
	}
}
