package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

// EntryCmd returns the entry command
func EntryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage tournament entries",
		Long:  "An entry registers one fencer in one tournament; pools and DE bouts hang off it",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a fencer in a tournament",
		Long: `Register a fencer in a tournament.

Examples:
  piste entry add --fencer FNC-001 --tournament TRN-001 --weapon foil --category Senior`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			var req primary.AddEntryRequest
			req.FencerID, _ = cmd.Flags().GetString("fencer")
			req.TournamentID, _ = cmd.Flags().GetString("tournament")
			req.Weapon, _ = cmd.Flags().GetString("weapon")
			req.AgeCategory, _ = cmd.Flags().GetString("category")
			req.InitialSeeding, _ = cmd.Flags().GetInt("seed")
			req.FinalPlacing, _ = cmd.Flags().GetInt("place")
			req.Notes, _ = cmd.Flags().GetString("notes")

			_, err = c.EntryAdapter(cmd.OutOrStdout()).Add(NewContext(), req)
			return err
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			var filters primary.EntryFilters
			filters.FencerID, _ = cmd.Flags().GetString("fencer")
			filters.TournamentID, _ = cmd.Flags().GetString("tournament")

			_, err = c.EntryAdapter(cmd.OutOrStdout()).List(NewContext(), filters)
			return err
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [entry-id]",
		Short: "Show entry details with its pools",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.EntryAdapter(cmd.OutOrStdout()).Show(NewContext(), args[0])
			return err
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update [entry-id]",
		Short: "Update an entry",
		Long:  "Update an entry. The fencer and tournament of an entry cannot be changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			patch := models.EntryPatch{
				Weapon:         changedString(cmd, "weapon"),
				AgeCategory:    changedString(cmd, "category"),
				InitialSeeding: changedInt(cmd, "seed"),
				FinalPlacing:   changedInt(cmd, "place"),
				Notes:          changedString(cmd, "notes"),
			}
			_, err = c.EntryAdapter(cmd.OutOrStdout()).Update(NewContext(), args[0], patch)
			return err
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [entry-id]",
		Short: "Delete an entry with its pools and bouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.EntryAdapter(cmd.OutOrStdout()).Delete(NewContext(), args[0])
			return err
		},
	}

	addCmd.Flags().StringP("fencer", "f", "", "Fencer ID")
	addCmd.Flags().StringP("tournament", "t", "", "Tournament ID")
	for _, sub := range []*cobra.Command{addCmd, updateCmd} {
		sub.Flags().StringP("weapon", "w", "", "Weapon (foil, epee, saber)")
		sub.Flags().StringP("category", "c", "", "Age category (Y10, Y12, Y14, Cadet, Junior, Senior, Veteran)")
		sub.Flags().Int("seed", 0, "Initial seeding")
		sub.Flags().Int("place", 0, "Final placing")
		sub.Flags().String("notes", "", "Free-form notes")
	}
	listCmd.Flags().StringP("fencer", "f", "", "Filter by fencer ID")
	listCmd.Flags().StringP("tournament", "t", "", "Filter by tournament ID")

	cmd.AddCommand(addCmd, listCmd, showCmd, updateCmd, deleteCmd)
	return cmd
}

// PoolCmd returns the pool command
func PoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Manage pools of an entry",
	}

	addCmd := &cobra.Command{
		Use:   "add [entry-id]",
		Short: "Add a pool to an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			req := primary.AddPoolRequest{EntryID: args[0]}
			req.PoolNumber, _ = cmd.Flags().GetInt("number")
			req.NumberOfFencers, _ = cmd.Flags().GetInt("fencers")

			_, err = c.EntryAdapter(cmd.OutOrStdout()).AddPool(NewContext(), req)
			return err
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			entryID, _ := cmd.Flags().GetString("entry")
			_, err = c.EntryAdapter(cmd.OutOrStdout()).ListPools(NewContext(), entryID)
			return err
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update [pool-id]",
		Short: "Update a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			patch := models.PoolPatch{
				PoolNumber:      changedInt(cmd, "number"),
				NumberOfFencers: changedInt(cmd, "fencers"),
			}
			_, err = c.EntryAdapter(cmd.OutOrStdout()).UpdatePool(NewContext(), args[0], patch)
			return err
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [pool-id]",
		Short: "Delete a pool and its bouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.EntryAdapter(cmd.OutOrStdout()).DeletePool(NewContext(), args[0])
			return err
		},
	}

	for _, sub := range []*cobra.Command{addCmd, updateCmd} {
		sub.Flags().IntP("number", "n", 1, "Pool number")
		sub.Flags().Int("fencers", 0, "Number of fencers in the pool")
	}
	listCmd.Flags().StringP("entry", "e", "", "Filter by entry ID")

	cmd.AddCommand(addCmd, listCmd, updateCmd, deleteCmd)
	return cmd
}
