package controllers

import (
	"net/http"

	"brandstack/config"
	"brandstack/models"

	"github.com/gin-gonic/gin"
)

type CollectionProvider interface {
	ListPublished(limit int) ([]models.Collection, error)
	GetPublishedBySlug(slug string) (*models.Collection, error)
}

// HomeController - главная страница: метаданные витрины и свежие
// опубликованные подборки
type HomeController struct {
	site        *config.Site
	collections CollectionProvider
	taxonomy    TaxonomyProvider
}

func NewHomeController(site *config.Site, collections CollectionProvider, taxonomy TaxonomyProvider) *HomeController {
	return &HomeController{site: site, collections: collections, taxonomy: taxonomy}
}

// GET /
func (hc *HomeController) Index(c *gin.Context) {
	collections, err := hc.collections.ListPublished(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения подборок"})
		return
	}

	// Верхние категории меню резолвятся по slug'ам из конфигурации,
	// отсутствующие в БД пропускаются
	top := make([]gin.H, 0, len(hc.site.TopCategories))
	for _, tc := range hc.site.TopCategories {
		category, err := hc.taxonomy.CategoryBySlug(tc.Slug)
		if err != nil {
			continue
		}
		top = append(top, gin.H{"name": tc.Label, "url": "/catalog?category=" + category.Slug})
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"site_name":       hc.site.Name,
		"menu":            hc.site.Menu,
		"contacts":        hc.site.Contacts,
		"top_categories":  top,
		"new_collections": collections,
	}, "success": true})
}

// GET /collections
func (hc *HomeController) Collections(c *gin.Context) {
	collections, err := hc.collections.ListPublished(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения подборок"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": collections, "success": true})
}

// GET /collections/:slug
func (hc *HomeController) Collection(c *gin.Context) {
	collection, err := hc.collections.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": collection, "success": true})
}
