package routes

import (
	"brandstack/controllers"
	"brandstack/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes настраивает публичные маршруты каталога.
// Витрина отдаёт только опубликованные товары, отзывы и реакции
// требуют авторизации.
func SetupCatalogRoutes(r *gin.Engine, catalogController *controllers.CatalogController,
	reviewController *controllers.ReviewController, reactionController *controllers.ReactionController) {

	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("", catalogController.List)
		catalogGroup.GET("/categories", catalogController.Categories)
		catalogGroup.GET("/tags", catalogController.Tags)
		catalogGroup.GET("/products/:slug", catalogController.GetProduct)
		catalogGroup.GET("/products/:slug/reviews", reviewController.List)
		catalogGroup.GET("/products/:slug/reactions", reactionController.Counts)

		authed := catalogGroup.Group("", middleware.JWTAuthMiddleware())
		{
			authed.POST("/products/:slug/reviews", reviewController.Create)
			authed.POST("/products/:slug/reactions", reactionController.Toggle)
		}
	}
}
