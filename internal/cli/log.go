package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/piste/internal/ports/primary"
)

// LogCmd returns the activity log command
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "View the activity log",
		Long: `View the audit trail of adds, updates and deletes (newest first).
The sqlite backend keeps the log across runs; other backends keep it for
the current process only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			if limit <= 0 {
				limit = 50
			}
			filters := primary.ActivityFilters{Limit: limit}
			filters.EntityType, _ = cmd.Flags().GetString("type")
			filters.EntityID, _ = cmd.Flags().GetString("id")
			filters.Action, _ = cmd.Flags().GetString("action")

			_, err = c.StorageAdapter(cmd.OutOrStdout()).Activity(NewContext(), filters)
			return err
		},
	}

	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old activity entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			days, _ := cmd.Flags().GetInt("days")
			_, err = c.StorageAdapter(cmd.OutOrStdout()).Prune(NewContext(), days)
			return err
		},
	}

	cmd.Flags().IntP("limit", "n", 50, "Number of entries to show")
	cmd.Flags().StringP("type", "t", "", "Filter by entity type (fencer, tournament, entry, pool, bout, de_bout)")
	cmd.Flags().String("id", "", "Filter by entity ID")
	cmd.Flags().StringP("action", "a", "", "Filter by action (create, update, delete)")
	pruneCmd.Flags().Int("days", 90, "Delete entries older than this many days")

	cmd.AddCommand(pruneCmd)
	return cmd
}
