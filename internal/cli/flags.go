package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Patch helpers return nil for flags the user did not pass, so updates only
// touch the fields named on the command line.

func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

// victoryFlag reads --victory/--defeat. Neither means "derive from the score".
func victoryFlag(cmd *cobra.Command) (*bool, error) {
	victory, _ := cmd.Flags().GetBool("victory")
	defeat, _ := cmd.Flags().GetBool("defeat")
	switch {
	case victory && defeat:
		return nil, fmt.Errorf("--victory and --defeat are mutually exclusive")
	case victory:
		v := true
		return &v, nil
	case defeat:
		v := false
		return &v, nil
	}
	return nil, nil
}

func addVictoryFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("victory", false, "Record a victory regardless of the score")
	cmd.Flags().Bool("defeat", false, "Record a defeat regardless of the score")
}

func parseNumber(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number (got %q)", name, s)
	}
	return n, nil
}
