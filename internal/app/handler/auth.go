package handler

import (
	"Salary-Dashboard/internal/app/config"
	"Salary-Dashboard/internal/app/ds"
	"Salary-Dashboard/internal/app/middleware"
	"Salary-Dashboard/internal/app/repository"
	"Salary-Dashboard/internal/app/utils"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	repo *repository.Repository
	cfg  *config.Config
}

func NewAuthHandler(repo *repository.Repository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		repo: repo,
		cfg:  cfg,
	}
}

// IssueToken godoc
// @Summary Issue admin token
// @Description Exchange the admin key for a JWT access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ds.TokenRequest true "Admin key"
// @Success 200 {object} ds.TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(ctx *gin.Context) {
	if h.cfg.AdminKey == "" {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin access is disabled"})
		return
	}

	var req ds.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Key), []byte(h.cfg.AdminKey)) != 1 {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, expiresAt, err := utils.GenerateAccessToken(ds.RoleAdmin, h.cfg.JWTSecret, h.cfg.JWTAccessExpire)
	if err != nil {
		logrus.Error("Failed to generate access token: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	ctx.JSON(http.StatusOK, ds.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Role:        ds.RoleAdmin,
	})
}

// Logout godoc
// @Summary Logout
// @Description Invalidate the admin token
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(ctx *gin.Context) {
	token, _ := middleware.GetToken(ctx)

	// Добавляем токен в blacklist (если Redis доступен)
	if h.repo.GetRedisClient() != nil {
		err := h.repo.GetRedisClient().AddToBlacklist(ctx.Request.Context(), token, h.cfg.JWTAccessExpire)
		if err != nil {
			logrus.Error("Failed to add token to blacklist: ", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
			return
		}
	} else {
		logrus.Warn("Redis is unavailable, token stays valid until it expires")
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
