package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/piste/internal/version"
)

// RootCmd returns the piste command with every subcommand attached.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "piste",
		Short:   "piste - track fencing tournaments, bouts and results",
		Version: version.String(),
		Long: `piste records fencers, tournaments, entries, pools and bouts, and
derives win percentages, indicators and performance trends from them.`,
		SilenceUsage: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return Shutdown()
		},
	}

	rootCmd.AddCommand(InitCmd())

	// Records
	rootCmd.AddCommand(FencerCmd())
	rootCmd.AddCommand(TournamentCmd())
	rootCmd.AddCommand(EntryCmd())
	rootCmd.AddCommand(PoolCmd())
	rootCmd.AddCommand(BoutCmd())
	rootCmd.AddCommand(DECmd())

	// Analytics
	rootCmd.AddCommand(StatsCmd())
	rootCmd.AddCommand(TrendCmd())
	rootCmd.AddCommand(HistoryCmd())
	rootCmd.AddCommand(DashboardCmd())

	// Maintenance
	rootCmd.AddCommand(StorageCmd())
	rootCmd.AddCommand(LogCmd())

	return rootCmd
}
