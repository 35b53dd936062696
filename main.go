// main.go
package main

import (
	"context"
	"log"
	"time"
	_ "time/tzdata"

	"airline-backoffice/cmd"
	"airline-backoffice/internal/data/repository"
	"airline-backoffice/internal/wire"
	"airline-backoffice/migrations"
	"airline-backoffice/pkg/database"
	"airline-backoffice/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("auth_enabled", config.Auth.Enabled),
	)

	if config.Database.AutoMigrate {
		if err := database.Migrate(migrations.FS, config.Database.DSN(), database.MigrateUp, logger); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, db, config, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := app.Service.Auth.EnsureAdmin(ctx); err != nil {
		logger.Error("Failed to seed admin account", zap.Error(err))
	}
	cancel()

	// Start server
	shutdown := time.Duration(config.App.ShutdownTimeout) * time.Second
	if err := cmd.APIServer(app.Router, config.App.Port, shutdown, logger); err != nil {
		logger.Error("Server exited", zap.Error(err))
	}
}
