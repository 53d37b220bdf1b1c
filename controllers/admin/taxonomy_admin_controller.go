package admin

import (
	"net/http"
	"strconv"
	"unicode/utf8"

	"brandstack/models"
	"brandstack/services/catalog"

	"github.com/gin-gonic/gin"
)

type TaxonomyAdminController struct {
	taxonomy *catalog.TaxonomyService
}

func NewTaxonomyAdminController(taxonomy *catalog.TaxonomyService) *TaxonomyAdminController {
	return &TaxonomyAdminController{taxonomy: taxonomy}
}

type taxonomyRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

func validateTaxonomyRequest(req *taxonomyRequest) string {
	if n := utf8.RuneCountInString(req.Name); n < 1 || n > 100 {
		return "Название должно быть от 1 до 100 символов"
	}
	if n := len(req.Slug); n < 1 || n > 100 {
		return "URL-адрес должен быть от 1 до 100 символов"
	}
	return ""
}

// POST /admin/categories
func (tc *TaxonomyAdminController) CreateCategory(c *gin.Context) {
	var req taxonomyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if msg := validateTaxonomyRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": msg})
		return
	}
	category := models.Category{Name: req.Name, Slug: req.Slug, Description: req.Description}
	if err := tc.taxonomy.CreateCategory(&category); err != nil {
		writeTaxonomySaveError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": category, "success": true})
}

// PUT /admin/categories/:id
func (tc *TaxonomyAdminController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}
	var req taxonomyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if msg := validateTaxonomyRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": msg})
		return
	}

	category, err := tc.taxonomy.CategoryByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Категория не найдена"})
		return
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.Description = req.Description
	if err := tc.taxonomy.UpdateCategory(category); err != nil {
		writeTaxonomySaveError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": category, "success": true})
}

// DELETE /admin/categories/:id
// Категория с товарами не удаляется
func (tc *TaxonomyAdminController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}
	if err := tc.taxonomy.DeleteCategory(uint(id)); err != nil {
		switch err {
		case models.ErrCategoryInUse:
			c.JSON(http.StatusConflict, gin.H{"result": nil, "success": false, "error": "Категория используется товарами и не может быть удалена"})
		case catalog.ErrTaxonomyNotFound:
			c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Категория не найдена"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка удаления"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}, "success": true})
}

// POST /admin/tags
func (tc *TaxonomyAdminController) CreateTag(c *gin.Context) {
	var req taxonomyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if msg := validateTaxonomyRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": msg})
		return
	}
	tag := models.Tag{Name: req.Name, Slug: req.Slug}
	if err := tc.taxonomy.CreateTag(&tag); err != nil {
		writeTaxonomySaveError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": tag, "success": true})
}

// PUT /admin/tags/:id
func (tc *TaxonomyAdminController) UpdateTag(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}
	var req taxonomyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if msg := validateTaxonomyRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": msg})
		return
	}

	tag, err := tc.taxonomy.TagByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Тег не найден"})
		return
	}

	tag.Name = req.Name
	tag.Slug = req.Slug
	if err := tc.taxonomy.UpdateTag(tag); err != nil {
		writeTaxonomySaveError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": tag, "success": true})
}

// DELETE /admin/tags/:id
func (tc *TaxonomyAdminController) DeleteTag(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}
	if err := tc.taxonomy.DeleteTag(uint(id)); err != nil {
		if err == catalog.ErrTaxonomyNotFound {
			c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Тег не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка удаления"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}, "success": true})
}

func writeTaxonomySaveError(c *gin.Context, err error) {
	if containsAny(err.Error(), "unique constraint", "23505") {
		c.JSON(http.StatusConflict, gin.H{"result": nil, "success": false, "error": "Запись с таким URL-адресом уже существует"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения"})
}
