package cli

import (
	"github.com/spf13/cobra"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [fencer-id]",
		Short: "Show a fencer's pool and DE statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.AnalyticsAdapter(cmd.OutOrStdout()).Stats(NewContext(), args[0])
			return err
		},
	}
}

// TrendCmd returns the trend command
func TrendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trend [fencer-id]",
		Short: "Show pool performance per tournament, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.AnalyticsAdapter(cmd.OutOrStdout()).Trend(NewContext(), args[0])
			return err
		},
	}
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [fencer-id]",
		Short: "Show a fencer's tournaments, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.AnalyticsAdapter(cmd.OutOrStdout()).History(NewContext(), args[0])
			return err
		},
	}
}

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show counts with upcoming and recent tournaments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.AnalyticsAdapter(cmd.OutOrStdout()).Dashboard(NewContext())
			return err
		},
	}
}
