package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/d60-Lab/mock-oms/internal/app"
	"github.com/d60-Lab/mock-oms/pkg/logger"
)

var syncStocksCmd = &cobra.Command{
	Use:   "sync-stocks",
	Short: "Push every stock record to the mall once",
	Long: `Push every stock record to the mall in a single sync request, the same
as POST /api/v1/stocks/sync-to-mall. A failed push is logged, not returned.`,
	RunE: runSyncStocks,
}

func init() {
	rootCmd.AddCommand(syncStocksCmd)
}

func runSyncStocks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Services.Stocks.SyncAll(ctx)
}
