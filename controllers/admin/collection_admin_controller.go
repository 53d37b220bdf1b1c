package admin

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"brandstack/config"
	"brandstack/models"
	"brandstack/services/catalog"
	"brandstack/utils"

	"github.com/gin-gonic/gin"
)

type CollectionAdminController struct {
	collections *catalog.CollectionService
	cfg         *config.Config
}

func NewCollectionAdminController(collections *catalog.CollectionService, cfg *config.Config) *CollectionAdminController {
	return &CollectionAdminController{collections: collections, cfg: cfg}
}

type collectionRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Content     string `json:"content"`
	IsPublished bool   `json:"is_published"`
}

func validateCollectionRequest(req *collectionRequest) string {
	if n := utf8.RuneCountInString(req.Title); n < 1 || n > 255 {
		return "Название подборки должно быть от 1 до 255 символов"
	}
	if n := len(req.Slug); n < 1 || n > 255 {
		return "URL-адрес должен быть от 1 до 255 символов"
	}
	return ""
}

// GET /admin/collections?page&limit&is_published
func (cc *CollectionAdminController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var published *bool
	if v := c.Query("is_published"); v != "" {
		b := v == "true" || v == "1"
		published = &b
	}

	collections, total, err := cc.collections.ListAll(page, limit, published)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения подборок"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"totalElements": total,
		"content":       collections,
	}, "success": true})
}

// POST /admin/collections
func (cc *CollectionAdminController) Create(c *gin.Context) {
	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if msg := validateCollectionRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": msg})
		return
	}
	collection := models.Collection{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		IsPublished: req.IsPublished,
	}
	if err := cc.collections.Create(&collection); err != nil {
		if containsAny(err.Error(), "unique constraint", "23505") {
			c.JSON(http.StatusConflict, gin.H{"result": nil, "success": false, "error": "Подборка с таким URL-адресом уже существует"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": collection, "success": true})
}

// PUT /admin/collections/:id
func (cc *CollectionAdminController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}
	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if msg := validateCollectionRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": msg})
		return
	}

	collection, err := cc.collections.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Подборка не найдена"})
		return
	}
	collection.Title = req.Title
	collection.Slug = req.Slug
	collection.Content = req.Content
	collection.IsPublished = req.IsPublished

	if err := cc.collections.Update(collection); err != nil {
		if containsAny(err.Error(), "unique constraint", "23505") {
			c.JSON(http.StatusConflict, gin.H{"result": nil, "success": false, "error": "Подборка с таким URL-адресом уже существует"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": collection, "success": true})
}

// DELETE /admin/collections/:id
func (cc *CollectionAdminController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}
	if err := cc.collections.Delete(uint(id)); err != nil {
		if err == models.ErrCollectionNotFound {
			c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Подборка не найдена"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка удаления"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}, "success": true})
}

// POST /admin/collections/publish и /admin/collections/draft
func (cc *CollectionAdminController) Publish(c *gin.Context) {
	cc.setPublication(c, true)
}

func (cc *CollectionAdminController) Draft(c *gin.Context) {
	cc.setPublication(c, false)
}

func (cc *CollectionAdminController) setPublication(c *gin.Context, published bool) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	count, err := cc.collections.SetPublicationState(req.IDs, published)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка обновления"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"updated": count}, "success": true})
}

// POST /admin/collections/:id/image
func (cc *CollectionAdminController) UploadImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}
	collection, err := cc.collections.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Подборка не найдена"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Файл image обязателен"})
		return
	}
	path, err := utils.SaveUploadedImage(c, file, cc.cfg.UploadDir, "collections")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Не удалось сохранить файл"})
		return
	}

	collection.Image = path
	if err := cc.collections.Update(collection); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"image": path}, "success": true})
}
