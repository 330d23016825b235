package wire

import (
	"os"

	"cinemahub/internal/console"
	"cinemahub/internal/data/repository"
	"cinemahub/internal/usecase"
	"cinemahub/pkg/utils"

	"go.uber.org/zap"
)

// App holds the fully wired application.
type App struct {
	Console *console.Console
	Service *usecase.Service
}

// Wiring assembles services and the console UI on top of the repositories.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	ui := console.New(os.Stdin, os.Stdout, service, config.Admin, logger)

	return &App{
		Console: ui,
		Service: service,
	}
}
