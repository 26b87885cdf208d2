package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

// BoutCmd returns the pool bout command
func BoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bout",
		Short: "Manage pool bouts",
	}

	addCmd := &cobra.Command{
		Use:   "add [pool-id] [opponent] [score-for] [score-against]",
		Short: "Record a pool bout",
		Long: `Record a pool bout. The result follows the score unless --victory or
--defeat is given; a tied score counts as a defeat.

Examples:
  piste bout add POOL-001 "Chen" 5 3
  piste bout add POOL-001 "Diaz" 4 4 --victory`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			scoreFor, err := parseNumber("score-for", args[2])
			if err != nil {
				return err
			}
			scoreAgainst, err := parseNumber("score-against", args[3])
			if err != nil {
				return err
			}
			victory, err := victoryFlag(cmd)
			if err != nil {
				return err
			}
			c, err := App()
			if err != nil {
				return err
			}

			_, err = c.BoutAdapter(cmd.OutOrStdout()).Add(NewContext(), primary.AddBoutRequest{
				PoolID:       args[0],
				OpponentName: args[1],
				ScoreFor:     scoreFor,
				ScoreAgainst: scoreAgainst,
				Victory:      victory,
			})
			return err
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List pool bouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			poolID, _ := cmd.Flags().GetString("pool")
			_, err = c.BoutAdapter(cmd.OutOrStdout()).List(NewContext(), poolID)
			return err
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update [bout-id]",
		Short: "Update a pool bout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := boutPatch(cmd)
			if err != nil {
				return err
			}
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.BoutAdapter(cmd.OutOrStdout()).Update(NewContext(), args[0], patch)
			return err
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [bout-id]",
		Short: "Delete a pool bout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.BoutAdapter(cmd.OutOrStdout()).Delete(NewContext(), args[0])
			return err
		},
	}

	addVictoryFlags(addCmd)
	addBoutPatchFlags(updateCmd)
	listCmd.Flags().StringP("pool", "p", "", "Filter by pool ID")

	cmd.AddCommand(addCmd, listCmd, updateCmd, deleteCmd)
	return cmd
}

// DECmd returns the direct-elimination bout command
func DECmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "de",
		Short: "Manage direct-elimination bouts",
	}

	addCmd := &cobra.Command{
		Use:   "add [entry-id] [round] [opponent] [score-for] [score-against]",
		Short: "Record a DE bout",
		Long: `Record a direct-elimination bout. round is the table size:
64, 32, 16, 8 (quarterfinal), 4 (semifinal), 2 (final) or 1.

Examples:
  piste de add ENT-001 16 "Chen" 15 11`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			round, err := parseNumber("round", args[1])
			if err != nil {
				return err
			}
			scoreFor, err := parseNumber("score-for", args[3])
			if err != nil {
				return err
			}
			scoreAgainst, err := parseNumber("score-against", args[4])
			if err != nil {
				return err
			}
			victory, err := victoryFlag(cmd)
			if err != nil {
				return err
			}
			c, err := App()
			if err != nil {
				return err
			}

			_, err = c.BoutAdapter(cmd.OutOrStdout()).AddDE(NewContext(), primary.AddDEBoutRequest{
				EntryID:      args[0],
				Round:        round,
				OpponentName: args[2],
				ScoreFor:     scoreFor,
				ScoreAgainst: scoreAgainst,
				Victory:      victory,
			})
			return err
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List DE bouts, earliest round first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			entryID, _ := cmd.Flags().GetString("entry")
			_, err = c.BoutAdapter(cmd.OutOrStdout()).ListDE(NewContext(), entryID)
			return err
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update [de-bout-id]",
		Short: "Update a DE bout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := boutPatch(cmd)
			if err != nil {
				return err
			}
			patch.Round = changedInt(cmd, "round")
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.BoutAdapter(cmd.OutOrStdout()).UpdateDE(NewContext(), args[0], patch)
			return err
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [de-bout-id]",
		Short: "Delete a DE bout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.BoutAdapter(cmd.OutOrStdout()).DeleteDE(NewContext(), args[0])
			return err
		},
	}

	addVictoryFlags(addCmd)
	addBoutPatchFlags(updateCmd)
	updateCmd.Flags().Int("round", 0, "DE round (64, 32, 16, 8, 4, 2, 1)")
	listCmd.Flags().StringP("entry", "e", "", "Filter by entry ID")

	cmd.AddCommand(addCmd, listCmd, updateCmd, deleteCmd)
	return cmd
}

func addBoutPatchFlags(cmd *cobra.Command) {
	cmd.Flags().String("opponent", "", "Opponent name")
	cmd.Flags().Int("for", 0, "Touches scored")
	cmd.Flags().Int("against", 0, "Touches received")
	addVictoryFlags(cmd)
}

func boutPatch(cmd *cobra.Command) (models.BoutPatch, error) {
	victory, err := victoryFlag(cmd)
	if err != nil {
		return models.BoutPatch{}, err
	}
	return models.BoutPatch{
		OpponentName: changedString(cmd, "opponent"),
		ScoreFor:     changedInt(cmd, "for"),
		ScoreAgainst: changedInt(cmd, "against"),
		Victory:      victory,
	}, nil
}
