package controllers

import (
	"net/http"
	"time"

	"brandstack/config"
	"brandstack/models"
	"brandstack/utils"

	"github.com/gin-gonic/gin"
)

type UserProfileController struct {
	cfg *config.Config
}

func NewUserProfileController(cfg *config.Config) *UserProfileController {
	return &UserProfileController{cfg: cfg}
}

// GET /user/profile
func (upc *UserProfileController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")
	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Пользователь не найден"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"id":          user.ID,
		"username":    user.Username,
		"email":       user.Email,
		"first_name":  user.FirstName,
		"last_name":   user.LastName,
		"date_birth":  user.DateBirth,
		"photo":       user.Photo,
		"role":        user.Role,
		"date_joined": user.CreatedAt,
	}, "success": true})
}

// PUT /user/profile
// Имя пользователя и e-mail через профиль не меняются
func (upc *UserProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetInt("user_id")
	var req struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		DateBirth *string `json:"date_birth"` // YYYY-MM-DD, пустая строка сбрасывает
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Пользователь не найден"})
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.DateBirth != nil {
		if *req.DateBirth == "" {
			user.DateBirth = nil
		} else {
			d, err := time.Parse("2006-01-02", *req.DateBirth)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "date_birth должен быть в формате YYYY-MM-DD"})
				return
			}
			user.DateBirth = &d
		}
	}

	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка обновления профиля"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"status": "profile updated"}, "success": true})
}

// POST /user/profile/photo
func (upc *UserProfileController) UploadPhoto(c *gin.Context) {
	userID := c.GetInt("user_id")
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Файл photo обязателен"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Пользователь не найден"})
		return
	}

	path, err := utils.SaveUploadedImage(c, file, upc.cfg.UploadDir, "users")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Не удалось сохранить файл"})
		return
	}

	user.Photo = path
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка обновления профиля"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"photo": path}, "success": true})
}

// POST /user/change-password
func (upc *UserProfileController) ChangePassword(c *gin.Context) {
	userID := c.GetInt("user_id")
	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "old_password и new_password обязательны"})
		return
	}
	if len(req.NewPassword) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Пароль должен быть не короче 8 символов"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Пользователь не найден"})
		return
	}
	if !utils.CheckPasswordHash(req.OldPassword, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Текущий пароль неверный"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка хэширования пароля"})
		return
	}
	user.Password = hash
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка обновления пароля"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"status": "password updated"}, "success": true})
}
