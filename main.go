// main.go
package main

import (
	"context"
	"log"

	"cinemahub/cmd"
	"cinemahub/internal/data/repository"
	"cinemahub/internal/wire"
	"cinemahub/pkg/database"
	"cinemahub/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Ensure schema exists
	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Warm the movie cache before the first menu renders
	if err := app.Service.Movie.Refresh(context.Background()); err != nil {
		logger.Fatal("Failed to load movie catalogue", zap.Error(err))
	}

	// Start the interactive session
	cmd.RunConsole(app.Console)
}
