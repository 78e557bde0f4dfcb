package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/d60-Lab/mock-oms/config"
	"github.com/d60-Lab/mock-oms/pkg/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "oms",
	Short: "Mock OMS - order, claim, shipment and stock management",
	Long: `Mock OMS records orders, claims (returns/exchanges), shipments and stock
levels, and forwards stock and shipment changes to the mall API.

Run "oms serve" to start the HTTP API, "oms migrate" to create the schema,
or "oms sync-stocks" to push every stock record to the mall once.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config/config.yaml)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig 读取配置并初始化日志
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, nil
}
