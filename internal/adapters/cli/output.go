// Package cli contains the output adapters behind the piste commands.
// Adapters are thin translators: they call a primary port and render the result.
package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/piste/internal/models"
	"github.com/example/piste/internal/ports/primary"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	warnMark = color.New(color.FgYellow).Sprint("!")
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

// printWarnings reports writes that succeeded in memory but were not persisted.
func printWarnings(out io.Writer, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(out, "%s %s\n", warnMark, color.New(color.FgYellow).Sprint(w))
	}
}

func printSaved(out io.Writer, verb, entity, id string, warnings []string) {
	fmt.Fprintf(out, "%s %s %s %s\n", okMark, verb, models.EntityLabel(entity), id)
	printWarnings(out, warnings)
}

func printDeleted(out io.Writer, res *primary.DeleteResult) {
	fmt.Fprintf(out, "%s Deleted %s %s\n", okMark, models.EntityLabel(res.Entity), res.ID)
	if res.Cascaded() > 0 {
		entities := make([]string, 0, len(res.Removed))
		for entity := range res.Removed {
			if entity != res.Entity {
				entities = append(entities, entity)
			}
		}
		sort.Strings(entities)
		for _, entity := range entities {
			if n := res.Removed[entity]; n > 0 {
				fmt.Fprintf(out, "  also removed %d %s record(s)\n", n, models.EntityLabel(entity))
			}
		}
	}
	printWarnings(out, res.Warnings)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func intOrDash(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", n)
}

func victoryMark(victory bool) string {
	if victory {
		return color.New(color.FgGreen).Sprint("V")
	}
	return color.New(color.FgRed).Sprint("D")
}
