package controllers

import (
	"net/http"

	"brandstack/models"

	"github.com/gin-gonic/gin"
)

type ReactionController struct {
	products  ProductProvider
	reactions ReactionProvider
}

func NewReactionController(products ProductProvider, reactions ReactionProvider) *ReactionController {
	return &ReactionController{products: products, reactions: reactions}
}

// POST /catalog/products/:slug/reactions
// Повтор того же действия снимает реакцию, противоположное - меняет её
func (rc *ReactionController) Toggle(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Пользователь не авторизован"})
		return
	}

	var req struct {
		Type string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	desired, ok := models.ParseReactionType(req.Type)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"result":  nil,
			"success": false,
			"error":   "type должен быть строго: like или dislike",
			"reason":  models.ReasonInvalidReactionType,
		})
		return
	}

	product, err := rc.products.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	state, err := rc.reactions.Toggle(product.ID, userID, desired)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения реакции"})
		return
	}

	counts, err := rc.reactions.Counts(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка подсчета реакций"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"state":    state,
		"likes":    counts.Likes,
		"dislikes": counts.Dislikes,
	}, "success": true})
}

// GET /catalog/products/:slug/reactions
func (rc *ReactionController) Counts(c *gin.Context) {
	product, err := rc.products.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		writeCatalogError(c, err)
		return
	}

	counts, err := rc.reactions.Counts(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка подсчета реакций"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": counts, "success": true})
}
