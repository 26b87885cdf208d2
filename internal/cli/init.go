package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/piste/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config to .piste/config.json",
		Long: `Write a default config to .piste/config.json in the current directory.

Examples:
  piste init
  piste init --backend file --user coach`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := workDir()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			force, _ := cmd.Flags().GetBool("force")
			path := config.Path(dir)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg := config.Default(dir)
			cfg.Backend, _ = cmd.Flags().GetString("backend")
			cfg.User, _ = cmd.Flags().GetString("user")
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Wrote %s (backend: %s)\n", path, cfg.Backend)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, `  piste fencer add "Alice Martin" --weapon foil`)
			fmt.Fprintln(out, "  piste storage check")
			return nil
		},
	}

	cmd.Flags().StringP("backend", "b", config.BackendSQLite, "Storage backend (sqlite, file, memory)")
	cmd.Flags().StringP("user", "u", "", "Name recorded in the activity log")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config")
	return cmd
}
