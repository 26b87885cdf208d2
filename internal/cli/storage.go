package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// StorageCmd returns the storage command
func StorageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Inspect and maintain the storage backend",
	}

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Probe the backend and show record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			_, err = c.StorageAdapter(cmd.OutOrStdout()).Check(NewContext())
			return err
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every collection as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := App()
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			return c.StorageAdapter(cmd.OutOrStdout()).Dump(NewContext(), format)
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				return fmt.Errorf("refusing to clear storage without --yes")
			}
			c, err := App()
			if err != nil {
				return err
			}
			return c.StorageAdapter(cmd.OutOrStdout()).Clear(NewContext())
		},
	}

	dumpCmd.Flags().StringP("format", "f", "json", "Output format (json, yaml)")
	clearCmd.Flags().BoolP("yes", "y", false, "Confirm deleting every record")

	cmd.AddCommand(checkCmd, dumpCmd, clearCmd)
	return cmd
}
