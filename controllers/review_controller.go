package controllers

import (
	"net/http"

	"brandstack/models"
	"brandstack/services/catalog"

	"github.com/gin-gonic/gin"
)

type ReviewProvider interface {
	Add(productID, userID uint, text string, rating int) (*models.Review, error)
	ListForProduct(productID uint) ([]catalog.ReviewEntry, error)
}

type ReviewController struct {
	products ProductProvider
	reviews  ReviewProvider
}

func NewReviewController(products ProductProvider, reviews ReviewProvider) *ReviewController {
	return &ReviewController{products: products, reviews: reviews}
}

// POST /catalog/products/:slug/reviews
func (rc *ReviewController) Create(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Пользователь не авторизован"})
		return
	}

	var req struct {
		Text   string `json:"text" binding:"required"`
		Rating int    `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	product, err := rc.products.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	review, err := rc.reviews.Add(product.ID, userID, req.Text, req.Rating)
	if err != nil {
		if ve, ok := models.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": ve.Message, "reason": ve.Reason})
			return
		}
		if err == models.ErrAlreadyReviewed {
			c.JSON(http.StatusConflict, gin.H{"result": nil, "success": false, "error": "Вы уже оставили отзыв на этот товар"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка создания отзыва"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": review, "success": true})
}

// GET /catalog/products/:slug/reviews
func (rc *ReviewController) List(c *gin.Context) {
	product, err := rc.products.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	reviews, err := rc.reviews.ListForProduct(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения отзывов"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": reviews, "success": true})
}
