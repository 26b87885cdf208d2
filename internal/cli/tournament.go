package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

// TournamentCmd returns the tournament command
func TournamentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Manage tournaments",
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a tournament",
		Long: `Add a tournament.

Examples:
  piste tournament add "Regional Open" --start 2023-03-01 --level Regional
  piste tournament add "Summer Cup" --start 2023-07-01 --end 2023-07-02 --location Lyon`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			req := primary.AddTournamentRequest{Name: args[0]}
			req.StartDate, _ = cmd.Flags().GetString("start")
			req.EndDate, _ = cmd.Flags().GetString("end")
			req.Location, _ = cmd.Flags().GetString("location")
			req.Level, _ = cmd.Flags().GetString("level")

			_, err = c.TournamentAdapter(cmd.OutOrStdout()).Add(NewContext(), req)
			return err
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tournaments, latest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.TournamentAdapter(cmd.OutOrStdout()).List(NewContext())
			return err
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [tournament-id]",
		Short: "Show tournament details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.TournamentAdapter(cmd.OutOrStdout()).Show(NewContext(), args[0])
			return err
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update [tournament-id]",
		Short: "Update a tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			patch := models.TournamentPatch{
				Name:      changedString(cmd, "name"),
				Location:  changedString(cmd, "location"),
				StartDate: changedString(cmd, "start"),
				EndDate:   changedString(cmd, "end"),
				Level:     changedString(cmd, "level"),
			}
			_, err = c.TournamentAdapter(cmd.OutOrStdout()).Update(NewContext(), args[0], patch)
			return err
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [tournament-id]",
		Short: "Delete a tournament with all entries, pools and bouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.TournamentAdapter(cmd.OutOrStdout()).Delete(NewContext(), args[0])
			return err
		},
	}

	for _, sub := range []*cobra.Command{addCmd, updateCmd} {
		sub.Flags().StringP("start", "s", "", "Start date (YYYY-MM-DD)")
		sub.Flags().StringP("end", "e", "", "End date (YYYY-MM-DD)")
		sub.Flags().StringP("location", "l", "", "Location")
		sub.Flags().String("level", "", "Level (Local, Regional, National, International)")
	}
	updateCmd.Flags().StringP("name", "n", "", "New name")

	cmd.AddCommand(addCmd, listCmd, showCmd, updateCmd, deleteCmd)
	return cmd
}
