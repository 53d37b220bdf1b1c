package admin

import (
	"fmt"
	"net/http"

	"brandstack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserAdminController контроллер для управления пользователями из админки
type UserAdminController struct {
	db *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{db: db}
}

// UsersList список пользователей с пагинацией и фильтрами для админки
func (ac *UserAdminController) UsersList(c *gin.Context) {
	pageSize := 20
	page := 1
	if v := c.Query("limit"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		if n > 0 && n <= 100 {
			pageSize = n
		}
	}
	if v := c.Query("page"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		if n > 0 {
			page = n
		}
	}
	email := c.Query("email")
	username := c.Query("username")
	role := c.Query("role")
	confirmed := c.Query("confirmed") // "true"/"false"

	q := ac.db.Model(&models.User{})
	if email != "" {
		q = q.Where("email = ?", email)
	}
	if username != "" {
		q = q.Where("username = ?", username)
	}
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if confirmed == "true" {
		q = q.Where("confirmed = ?", true)
	}
	if confirmed == "false" {
		q = q.Where("confirmed = ?", false)
	}

	var total int64
	q.Count(&total)

	var users []models.User
	q.Order("created_at DESC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&users)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"users": users,
			"total": total,
			"page":  page,
			"limit": pageSize,
		},
	})
}

// DeleteUserRequest запрос на удаление пользователя
type DeleteUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// DeleteUser удаляет пользователя по email или username (жёстко)
func (ac *UserAdminController) DeleteUser(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if (req.Email == "" && req.Username == "") || (req.Email != "" && req.Username != "") {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Укажите только email или только username"})
		return
	}
	var user models.User
	tx := ac.db
	if req.Email != "" {
		tx = tx.Where("email = ?", req.Email)
	} else {
		tx = tx.Where("username = ?", req.Username)
	}
	if err := tx.First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Пользователь не найден"})
		return
	}
	// Жёсткое удаление, отзывы и реакции уходят каскадом
	if err := ac.db.Unscoped().Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Не удалось удалить пользователя"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": user.ID}, "success": true})
}
