package handler

import (
	"Salary-Dashboard/internal/app/config"
	"Salary-Dashboard/internal/app/middleware"
	"Salary-Dashboard/internal/app/repository"
	"Salary-Dashboard/internal/app/web"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterHandlers регистрирует все обработчики
func RegisterHandlers(router *gin.Engine, repo *repository.Repository, cfg *config.Config) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	// Создаем хендлеры
	dashboardHandler := NewDashboardHandler(repo)
	datasetHandler := NewDatasetHandler(repo)
	authHandler := NewAuthHandler(repo, cfg)

	router.GET("/", dashboardHandler.Index)
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiRouter := router.Group("/api")

	// Public routes
	public := apiRouter.Group("")
	{
		public.GET("/filters", dashboardHandler.GetFilters)
		public.GET("/dashboard", dashboardHandler.GetDashboard)
		public.GET("/records", dashboardHandler.GetRecords)
		public.GET("/records/export.csv", dashboardHandler.ExportCSV)
		public.GET("/dataset", datasetHandler.GetDataset)

		public.POST("/auth/token", authHandler.IssueToken)
	}

	// Admin only routes
	admin := apiRouter.Group("")
	admin.Use(middleware.AuthMiddleware(repo, cfg.JWTSecret), middleware.AdminOnly())
	{
		admin.POST("/auth/logout", authHandler.Logout)
		admin.POST("/dataset/reload", datasetHandler.ReloadDataset)
		admin.POST("/exports", datasetHandler.CreateExport)
	}

	return nil
}
