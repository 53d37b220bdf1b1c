package admin

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"unicode/utf8"

	"brandstack/config"
	"brandstack/models"
	"brandstack/services/catalog"
	"brandstack/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductStore - admin-доступ к товарам без фильтра публикации
type ProductStore interface {
	ListAll(opts catalog.ProductListOptions) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product, tagIDs []uint) error
	Update(product *models.Product, tagIDs []uint) error
	Delete(id uint) error
	SetPublicationState(ids []uint, published bool) (int64, error)
}

// ProductAdminController - CRUD товаров для бэк-офиса, работает в обход
// фильтра публикации
type ProductAdminController struct {
	products ProductStore
	cfg      *config.Config
}

func NewProductAdminController(products ProductStore, cfg *config.Config) *ProductAdminController {
	return &ProductAdminController{products: products, cfg: cfg}
}

var nameForbiddenChars = regexp.MustCompile(`[!@#$%^&*()+=\[\]{};:"\\|<>/?]`)

var maxProductPrice = decimal.NewFromInt(10000000)

type ProductRequest struct {
	Name        string               `json:"name" binding:"required"`
	Slug        string               `json:"slug" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Price       decimal.Decimal      `json:"price"`
	CategoryID  *uint                `json:"category_id"`
	TagIDs      []uint               `json:"tag_ids"`
	IsPublished bool                 `json:"is_published"`
	Detail      *models.ProductDetail `json:"detail"`
}

// Правила формы товара из бэк-офиса
func validateProductRequest(req *ProductRequest) string {
	if n := utf8.RuneCountInString(req.Name); n < 5 || n > 255 {
		return "Название товара должно быть от 5 до 255 символов"
	}
	if nameForbiddenChars.MatchString(req.Name) {
		return "Название товара не должно содержать специальные символы"
	}
	if n := len(req.Slug); n < 5 || n > 255 {
		return "URL-адрес должен быть от 5 до 255 символов"
	}
	if n := utf8.RuneCountInString(req.Description); n < 10 || n > 500 {
		return "Описание товара должно быть от 10 до 500 символов"
	}
	if req.Price.IsNegative() {
		return "Цена товара должна быть не менее 0"
	}
	if req.Price.GreaterThan(maxProductPrice) {
		return "Цена товара должна быть не более 10 000 000"
	}
	return ""
}

// GET /admin/products?page&limit&is_published&category&price_range&search
func (pc *ProductAdminController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	opts := catalog.ProductListOptions{
		Page:         page,
		Limit:        limit,
		CategorySlug: c.Query("category"),
		PriceBucket:  c.Query("price_range"),
		Search:       c.Query("search"),
	}
	if v := c.Query("is_published"); v != "" {
		published := v == "true" || v == "1"
		opts.Published = &published
	}

	products, total, err := pc.products.ListAll(opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка получения товаров"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"totalPages":    totalPages,
		"totalElements": total,
		"content":       products,
		"size":          limit,
		"number":        page - 1,
	}, "success": true})
}

// GET /admin/products/:id
func (pc *ProductAdminController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}
	product, err := pc.products.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Товар не найден"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": product, "success": true})
}

// POST /admin/products
func (pc *ProductAdminController) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if msg := validateProductRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": msg})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
		Detail:      req.Detail,
	}
	if err := pc.products.Create(&product, req.TagIDs); err != nil {
		writeProductSaveError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": product, "success": true})
}

// PUT /admin/products/:id
func (pc *ProductAdminController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if msg := validateProductRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": msg})
		return
	}

	product, err := pc.products.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Товар не найден"})
		return
	}

	product.Name = req.Name
	product.Slug = req.Slug
	product.Description = req.Description
	product.Price = req.Price
	product.CategoryID = req.CategoryID
	product.IsPublished = req.IsPublished
	if req.Detail != nil {
		req.Detail.ProductID = product.ID
		product.Detail = req.Detail
	}

	if err := pc.products.Update(product, req.TagIDs); err != nil {
		writeProductSaveError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": product, "success": true})
}

// DELETE /admin/products/:id
func (pc *ProductAdminController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}
	if err := pc.products.Delete(uint(id)); err != nil {
		if err == models.ErrProductNotFound {
			c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Товар не найден"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка удаления"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}, "success": true})
}

type bulkIDsRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// POST /admin/products/publish
func (pc *ProductAdminController) Publish(c *gin.Context) {
	pc.setPublication(c, true)
}

// POST /admin/products/draft
func (pc *ProductAdminController) Draft(c *gin.Context) {
	pc.setPublication(c, false)
}

func (pc *ProductAdminController) setPublication(c *gin.Context, published bool) {
	var req bulkIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	count, err := pc.products.SetPublicationState(req.IDs, published)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка обновления"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"updated": count}, "success": true})
}

// POST /admin/products/:id/images
// Файл сохраняется под случайным именем и дописывается в галерею
func (pc *ProductAdminController) UploadImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}
	product, err := pc.products.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Товар не найден"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Файл image обязателен"})
		return
	}
	path, err := utils.SaveUploadedImage(c, file, pc.cfg.UploadDir, "products")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Не удалось сохранить файл"})
		return
	}

	var images []string
	if len(product.Images) > 0 {
		_ = json.Unmarshal(product.Images, &images)
	}
	images = append(images, path)
	raw, _ := json.Marshal(images)
	product.Images = datatypes.JSON(raw)

	if err := pc.products.Update(product, nil); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка обновления товара"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"images": images}, "success": true})
}

func writeProductSaveError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	// Дубликат slug'а или исчезнувшая категория
	msg := err.Error()
	switch {
	case containsAny(msg, "unique constraint", "23505"):
		c.JSON(http.StatusConflict, gin.H{"result": nil, "success": false, "error": "Товар с таким URL-адресом уже существует"})
	case containsAny(msg, "foreign key constraint", "23503"):
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Указанная категория не существует"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения товара"})
	}
}
