package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"brandstack/models"
	"brandstack/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleOauthConfig *oauth2.Config

func InitGoogleOAuth() {
	googleOauthConfig = &oauth2.Config{
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URI"),
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
		Endpoint:     google.Endpoint,
	}
}

type UserController struct {
	RDB *redis.Client
}

func NewUserController(rdb *redis.Client) *UserController {
	return &UserController{RDB: rdb}
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DateBirth string `json:"date_birth"` // YYYY-MM-DD, необязательно
}

// POST /auth/register
// Регистрация двухшаговая: данные паркуются в Redis, пользователь
// создаётся после подтверждения кода из письма
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email и password обязательны"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Пароль должен быть не короче 8 символов"})
		return
	}
	if req.DateBirth != "" {
		if _, err := time.Parse("2006-01-02", req.DateBirth); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_birth должен быть в формате YYYY-MM-DD"})
			return
		}
	}

	db := utils.GetDB()
	var count int64
	db.Model(&models.User{}).Where("email = ? OR username = ?", req.Email, req.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Пользователь с таким E-mail или именем уже существует"})
		return
	}

	ctx := context.Background()
	redisKey := "reg:email:" + req.Email

	if ok, msg := utils.CanSendOTP(uc.RDB, redisKey); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": msg})
		return
	}

	otp := utils.GenerateOTP()
	utils.MarkOTPSent(uc.RDB, redisKey)
	uc.RDB.Set(ctx, redisKey+":otp", otp, 5*time.Minute)

	pending, _ := json.Marshal(req)
	uc.RDB.Set(ctx, redisKey+":data", pending, 5*time.Minute)

	msg := fmt.Sprintf("BrandStack: Ваш код подтверждения для регистрации на сайте: %s", otp)
	if err := utils.SendEmail(req.Email, "BrandStack: Код подтверждения", msg,
		os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка отправки email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "otp sent"})
}

type ConfirmOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// POST /auth/confirm-otp
func (uc *UserController) ConfirmOTP(c *gin.Context) {
	var req ConfirmOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email и otp обязательны"})
		return
	}

	ctx := context.Background()
	redisKey := "reg:email:" + req.Email

	otpInRedis, err := uc.RDB.Get(ctx, redisKey+":otp").Result()
	if err != nil || otpInRedis != req.OTP {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный или истёкший код"})
		return
	}

	pendingJSON, err := uc.RDB.Get(ctx, redisKey+":data").Result()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Данные регистрации истекли, начните заново"})
		return
	}
	var pending RegisterRequest
	if err := json.Unmarshal([]byte(pendingJSON), &pending); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка чтения данных регистрации"})
		return
	}

	hash, err := utils.HashPassword(pending.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка хэширования пароля"})
		return
	}

	user := models.User{
		Username:  pending.Username,
		Email:     pending.Email,
		Password:  hash,
		FirstName: pending.FirstName,
		LastName:  pending.LastName,
		Role:      "user",
		Confirmed: true,
	}
	if pending.DateBirth != "" {
		if d, err := time.Parse("2006-01-02", pending.DateBirth); err == nil {
			user.DateBirth = &d
		}
	}

	db := utils.GetDB()
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения пользователя"})
		return
	}

	uc.RDB.Del(ctx, redisKey+":otp", redisKey+":data")
	c.JSON(http.StatusOK, gin.H{"status": "user created"})
}

type LoginRequest struct {
	Username string `json:"username"` // имя пользователя или e-mail
	Password string `json:"password"`
}

// POST /auth/login
// В поле username принимается и имя пользователя, и e-mail
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username и password обязательны"})
		return
	}

	db := utils.GetDB()
	var user models.User
	result := db.Where("(username = ? OR email = ?) AND confirmed = ?",
		req.Username, strings.ToLower(req.Username), true).First(&user)
	if result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
		return
	}
	if user.GoogleID != nil && *user.GoogleID != "" && user.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Этот аккаунт зарегистрирован через Google. Войдите через Google OAuth."})
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Пароль неверный"})
		return
	}

	access, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка генерации токена"})
		return
	}
	refresh, refreshExp, err := utils.GenerateRefreshToken(user.ID, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка генерации токена"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":          access,
		"refresh_token":  refresh,
		"refresh_expiry": refreshExp,
	})
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// POST /auth/refresh
func (uc *UserController) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh_token обязателен"})
		return
	}

	claims, err := utils.ParseJWT(req.RefreshToken, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	if t, _ := claims["type"].(string); t != "refresh" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token payload"})
		return
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token payload"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, uint(userID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
		return
	}

	access, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка генерации токена"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": access})
}

// POST /auth/logout
// Предъявленный токен попадает в черный список до своего истечения
func (uc *UserController) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Пользователь не авторизован"})
		return
	}

	ttl := 72 * time.Hour
	if claims, err := utils.ParseJWT(token, os.Getenv("JWT_SECRET")); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			until := time.Until(time.Unix(int64(exp), 0))
			if until > 0 {
				ttl = until
			}
		}
	}
	uc.RDB.Set(context.Background(), "blacklist:"+token, 1, ttl)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// POST /auth/forgot-password
func (uc *UserController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email обязателен"})
		return
	}

	ctx := context.Background()
	redisKey := "reset:email:" + req.Email

	if ok, msg := utils.CanSendOTP(uc.RDB, redisKey); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": msg})
		return
	}

	otp := utils.GenerateOTP()
	utils.MarkOTPSent(uc.RDB, redisKey)
	uc.RDB.Set(ctx, redisKey+":otp", otp, 5*time.Minute)

	msg := fmt.Sprintf("BrandStack: Ваш код подтверждения для восстановления пароля: %s", otp)
	if err := utils.SendEmail(req.Email, "BrandStack: Восстановление пароля", msg,
		os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка отправки email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "otp sent"})
}

type ResetPasswordRequest struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

// POST /auth/reset-password
func (uc *UserController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.OTP == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, otp и password обязательны"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Пароль должен быть не короче 8 символов"})
		return
	}

	ctx := context.Background()
	redisKey := "reset:email:" + req.Email
	otpInRedis, err := uc.RDB.Get(ctx, redisKey+":otp").Result()
	if err != nil || otpInRedis != req.OTP {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный или истёкший код"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.Where("email = ? AND confirmed = ?", req.Email, true).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден или не подтверждён"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка хэширования пароля"})
		return
	}
	user.Password = hash
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка обновления пароля"})
		return
	}

	uc.RDB.Del(ctx, redisKey+":otp")
	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}

type googleUserInfo struct {
	Email string `json:"email"`
	Id    string `json:"id"`
	Name  string `json:"name"`
}

// GET /auth/google
func (uc *UserController) GoogleLogin(c *gin.Context) {
	url := googleOauthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline)
	c.Redirect(http.StatusFound, url)
}

// GET /auth/google/callback
func (uc *UserController) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code not found"})
		return
	}
	token, err := googleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token exchange failed"})
		return
	}
	client := googleOauthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo?alt=json")
	if err != nil || resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to get user info"})
		return
	}
	defer resp.Body.Close()
	var userInfo googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to decode user info"})
		return
	}
	if userInfo.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email not found in Google profile"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.Where("email = ?", strings.ToLower(userInfo.Email)).First(&user).Error; err == nil {
		jwtToken, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка генерации токена"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": jwtToken})
		return
	}

	// Новый пользователь: паркуем профиль Google, имя пользователя
	// спрашиваем отдельным шагом
	sessionID := utils.GenerateSessionID()
	userData := map[string]string{
		"email":     strings.ToLower(userInfo.Email),
		"google_id": userInfo.Id,
		"name":      userInfo.Name,
	}
	userDataJSON, _ := json.Marshal(userData)
	uc.RDB.Set(context.Background(), "google:session:"+sessionID, userDataJSON, 10*time.Minute)
	c.JSON(http.StatusOK, gin.H{"need_username": true, "session_id": sessionID})
}

// POST /auth/google/complete
func (uc *UserController) GoogleComplete(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
		Username  string `json:"username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.SessionID == "" || req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id и username обязательны"})
		return
	}

	ctx := context.Background()
	redisKey := "google:session:" + req.SessionID
	userDataJSON, err := uc.RDB.Get(ctx, redisKey).Result()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session not found or expired"})
		return
	}
	var userData map[string]string
	if err := json.Unmarshal([]byte(userDataJSON), &userData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse session data"})
		return
	}

	db := utils.GetDB()
	var count int64
	db.Model(&models.User{}).Where("email = ? OR username = ?", userData["email"], req.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
		return
	}

	googleID := userData["google_id"]
	user := models.User{
		Username:  req.Username,
		Email:     userData["email"],
		FirstName: userData["name"],
		GoogleID:  &googleID,
		Role:      "user",
		Confirmed: true,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения пользователя"})
		return
	}

	uc.RDB.Del(ctx, redisKey)
	jwtToken, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка генерации токена"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": jwtToken})
}
