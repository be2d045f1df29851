package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Salary-Dashboard/internal/app/config"
	"Salary-Dashboard/internal/app/handler"
	"Salary-Dashboard/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config     *config.Config
	Router     *gin.Engine
	Repository *repository.Repository
}

func NewApp(c *config.Config, r *gin.Engine, repo *repository.Repository) *Application {
	return &Application{
		Config:     c,
		Router:     r,
		Repository: repo,
	}
}

// Addr адрес, на котором слушает сервер
func (a *Application) Addr() string {
	return fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	if err := handler.RegisterHandlers(a.Router, a.Repository, a.Config); err != nil {
		logrus.Fatalf("error registering handlers: %v", err)
	}

	server := &http.Server{
		Addr:    a.Addr(),
		Handler: a.Router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()
	logrus.Infof("Listening on %s", server.Addr)

	// Ждем сигнала и корректно завершаемся
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	a.Repository.Close()

	logrus.Info("Server down")
}
