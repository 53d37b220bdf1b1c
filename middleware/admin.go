package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware пускает дальше только пользователей с ролью admin.
// Ставится после JWTAuthMiddleware, который кладёт роль в контекст.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"result": nil, "success": false, "error": "Доступ только для администратора"})
			c.Abort()
			return
		}
		c.Next()
	}
}
