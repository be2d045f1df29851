package main

import (
	"context"

	"Salary-Dashboard/internal/app/config"
	"Salary-Dashboard/internal/app/repository"
	"Salary-Dashboard/internal/pkg"

	_ "Salary-Dashboard/docs" // Важно: добавляем импорт docs

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title Salary Dashboard API
// @version 1.0
// @description Filtered metrics and chart data over the data-area salaries dataset

// @contact.name API Support
// @contact.url http://localhost:8080

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

// @tag.name Dashboard
// @tag.description Filters, metrics, charts and the raw table
// @tag.name Dataset
// @tag.description Loaded snapshot, reloads and exports
// @tag.name Auth
// @tag.description Admin tokens
func main() {
	// Загружаем конфигурацию
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	if level, err := logrus.ParseLevel(conf.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("unknown log level %q, using info", conf.LogLevel)
	}

	router := gin.Default()

	// Инициализируем репозиторий и загружаем датасет
	repo, err := repository.NewRepository(context.Background(), conf)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	// Создаем приложение с конфигурацией
	application := pkg.NewApp(conf, router, repo)

	// Запускаем приложение
	application.RunApp()
}
