package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seasonhq/scorecard/cmd/scoremerge/app"
	"github.com/seasonhq/scorecard/pkg/labels"
)

// NewConflictsCommand creates the conflicts command.
func NewConflictsCommand(config *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts <file>...",
		Short: "Report conflicts between scorecard files without merging",
		Long: `Conflicts performs a dry-run merge and prints the conflict report.
The exit status is 1 when any conflicts exist, so the command doubles as
a pre-merge check in scripts.`,
		Example: `  scoremerge conflicts alice.json bob.json
  scoremerge conflicts --questions questions.csv drafts/*.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runMerge(config, args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), labels.FormatConflicts(result.Conflicts, loadRegistry(config)))
			fmt.Fprintf(cmd.OutOrStdout(), "Merged %d field(s) and %d KPI entr(ies) from %d source(s).\n",
				result.Stats.FieldsMerged, result.Stats.KPIsMerged, result.Stats.SourcesMerged)

			if result.HasConflicts() {
				cmd.SilenceUsage = true
				return fmt.Errorf("%d unresolved conflict(s)", len(result.Conflicts))
			}
			return nil
		},
	}
}
