package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/d60-Lab/mock-oms/internal/repository"
	"github.com/d60-Lab/mock-oms/pkg/database"
	"github.com/d60-Lab/mock-oms/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer database.Close(db)

	if err := repository.Migrate(db); err != nil {
		return err
	}
	logger.Info("schema migrated", zap.String("driver", cfg.Database.Driver))
	return nil
}
