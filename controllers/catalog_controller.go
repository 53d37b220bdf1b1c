package controllers

import (
	"net/http"
	"strconv"

	"brandstack/models"
	"brandstack/services/catalog"

	"github.com/gin-gonic/gin"
)

// ProductProvider - публичный доступ к товарам, только опубликованные
type ProductProvider interface {
	ListPublished(opts catalog.ProductListOptions) ([]models.Product, int64, error)
	GetPublishedBySlug(slug string) (*models.Product, error)
}

type TaxonomyProvider interface {
	Categories() ([]models.Category, error)
	Tags() ([]models.Tag, error)
	CategoryBySlug(slug string) (*models.Category, error)
}

type ReactionProvider interface {
	Toggle(productID, userID uint, desired models.ReactionType) (string, error)
	Counts(productID uint) (models.ReactionCounts, error)
}

type CatalogController struct {
	products  ProductProvider
	taxonomy  TaxonomyProvider
	reactions ReactionProvider
}

func NewCatalogController(products ProductProvider, taxonomy TaxonomyProvider, reactions ReactionProvider) *CatalogController {
	return &CatalogController{products: products, taxonomy: taxonomy, reactions: reactions}
}

// pageEnvelope - страничный конверт выдачи
func pageEnvelope(content interface{}, total int64, page, limit, count int) gin.H {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return gin.H{
		"totalPages":       totalPages,
		"totalElements":    total,
		"first":            page == 1,
		"last":             page >= totalPages && totalPages != 0,
		"size":             limit,
		"content":          content,
		"number":           page - 1,
		"numberOfElements": count,
		"empty":            count == 0,
	}
}

// GET /catalog?page=1&limit=20&category=...&tag=...&price=low|medium|high|expensive&search=...
func (cc *CatalogController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	if priceQ := c.Query("price"); priceQ != "" {
		if _, _, ok := models.ParsePriceBucket(priceQ); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "price должен быть строго: low, medium, high или expensive"})
			return
		}
	}

	opts := catalog.ProductListOptions{
		Page:         page,
		Limit:        limit,
		CategorySlug: c.Query("category"),
		TagSlug:      c.Query("tag"),
		PriceBucket:  c.Query("price"),
		Search:       c.Query("search"),
	}

	products, total, err := cc.products.ListPublished(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения каталога"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": pageEnvelope(products, total, page, limit, len(products)), "success": true})
}

// GET /catalog/products/:slug
func (cc *CatalogController) GetProduct(c *gin.Context) {
	product, err := cc.products.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	counts, err := cc.reactions.Counts(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка подсчета реакций"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"product":      product,
		"price_bucket": models.BucketForPrice(product.Price),
		"reactions":    counts,
	}, "success": true})
}

// GET /catalog/categories
func (cc *CatalogController) Categories(c *gin.Context) {
	categories, err := cc.taxonomy.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения категорий"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": categories, "success": true})
}

// GET /catalog/tags
func (cc *CatalogController) Tags(c *gin.Context) {
	tags, err := cc.taxonomy.Tags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения тегов"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": tags, "success": true})
}

// Черновик и отсутствующий товар наружу выглядят одинаково
func writeCatalogError(c *gin.Context, err error) {
	switch {
	case err == models.ErrProductNotFound || err == models.ErrCollectionNotFound:
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Не найдено"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Внутренняя ошибка"})
	}
}
