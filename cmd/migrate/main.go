package main

import (
	"log"
	"os"

	"airline-backoffice/migrations"
	"airline-backoffice/pkg/database"
	"airline-backoffice/pkg/utils"

	"go.uber.org/zap"
)

const argLength = 2

func main() {
	if len(os.Args) < argLength {
		log.Fatal("Migration direction is required: up, down, step-up or drop")
	}

	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	action := database.MigrateAction(os.Args[1])
	switch action {
	case database.MigrateUp, database.MigrateDown, database.MigrateStepUp, database.MigrateDrop:
	default:
		log.Fatal("Invalid direction. Use 'up', 'down', 'step-up' or 'drop'")
	}

	if err := database.Migrate(migrations.FS, config.Database.DSN(), action, logger); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
}
