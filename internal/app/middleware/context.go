package middleware

import (
	"github.com/gin-gonic/gin"
)

// GetRole возвращает роль из контекста
func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get("role")
	if !exists {
		return "", false
	}
	return role.(string), true
}

// GetToken возвращает проверенный токен из контекста
func GetToken(c *gin.Context) (string, bool) {
	token, exists := c.Get("token")
	if !exists {
		return "", false
	}
	return token.(string), true
}
