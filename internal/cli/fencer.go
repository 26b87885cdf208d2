package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

// FencerCmd returns the fencer command
func FencerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fencer",
		Short: "Manage fencers",
		Long:  "Add, list, and manage the fencers you track",
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a fencer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			req := primary.AddFencerRequest{Name: args[0]}
			req.Club, _ = cmd.Flags().GetString("club")
			req.PrimaryWeapon, _ = cmd.Flags().GetString("weapon")
			req.SecondaryWeapon, _ = cmd.Flags().GetString("secondary-weapon")
			req.Rating, _ = cmd.Flags().GetString("rating")
			req.DateOfBirth, _ = cmd.Flags().GetString("dob")
			req.Gender, _ = cmd.Flags().GetString("gender")

			_, err = c.FencerAdapter(cmd.OutOrStdout()).Add(NewContext(), req)
			return err
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List fencers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.FencerAdapter(cmd.OutOrStdout()).List(NewContext())
			return err
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [fencer-id]",
		Short: "Show fencer details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.FencerAdapter(cmd.OutOrStdout()).Show(NewContext(), args[0])
			return err
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update [fencer-id]",
		Short: "Update a fencer",
		Long: `Update the fields given as flags; other fields keep their values.

Examples:
  piste fencer update FNC-001 --club "Salle Nord"
  piste fencer update FNC-001 --rating A23 --secondary-weapon ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			patch := models.FencerPatch{
				Name:            changedString(cmd, "name"),
				Club:            changedString(cmd, "club"),
				PrimaryWeapon:   changedString(cmd, "weapon"),
				SecondaryWeapon: changedString(cmd, "secondary-weapon"),
				Rating:          changedString(cmd, "rating"),
				DateOfBirth:     changedString(cmd, "dob"),
				Gender:          changedString(cmd, "gender"),
			}
			_, err = c.FencerAdapter(cmd.OutOrStdout()).Update(NewContext(), args[0], patch)
			return err
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [fencer-id]",
		Short: "Delete a fencer with all entries, pools and bouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.FencerAdapter(cmd.OutOrStdout()).Delete(NewContext(), args[0])
			return err
		},
	}

	for _, sub := range []*cobra.Command{addCmd, updateCmd} {
		sub.Flags().String("club", "", "Club name")
		sub.Flags().StringP("weapon", "w", "", "Primary weapon (foil, epee, saber)")
		sub.Flags().String("secondary-weapon", "", "Secondary weapon")
		sub.Flags().String("rating", "", "National rating, e.g. A23")
		sub.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
		sub.Flags().String("gender", "", "Gender (M, F, O)")
	}
	updateCmd.Flags().StringP("name", "n", "", "New name")

	cmd.AddCommand(addCmd, listCmd, showCmd, updateCmd, deleteCmd)
	return cmd
}
