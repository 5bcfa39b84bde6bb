package main

import (
	"github.com/spf13/cobra"

	"github.com/guttosm/pricediff/config"
	"github.com/guttosm/pricediff/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "pricediff",
	Short: "Day-over-day price comparison viewer",
	Long: `pricediff shows which catalog items changed price, appeared or disappeared
between yesterday's and today's price lists, as computed by the comparison backend.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration from environment or .env file
		config.LoadConfig()

		// Initialize JSON logger
		logger.Init()
	},
}
