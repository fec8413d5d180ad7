// Package cmd implements the scoremerge CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seasonhq/scorecard/cmd/scoremerge/app"
	"github.com/seasonhq/scorecard/pkg/logging"
)

// NewRootCommand creates the scoremerge root command.
func NewRootCommand(config *app.Config, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:   "scoremerge",
		Short: "Merge scorecard documents from multiple contributors",
		Long: `scoremerge combines scorecard documents filled out independently by
multiple contributors into one, preferring edited values over untouched
defaults and flagging the fields where contributors genuinely disagree.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := app.NewLogger(config)
			logging.SetDefault(logger)
			cmd.SetContext(logging.WithOperation(
				logging.WithLogger(cmd.Context(), &logger), cmd.Name()))
		},
	}

	root.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", config.Verbose, "enable debug logging")
	root.PersistentFlags().BoolVarP(&config.Quiet, "quiet", "q", config.Quiet, "only log warnings and errors")
	root.PersistentFlags().StringVar(&config.Policy, "policy", config.Policy,
		"merge policy (non-default-wins, last-wins, first-wins, conflict)")
	root.PersistentFlags().StringVar(&config.Questions, "questions", config.Questions,
		"question-configuration CSV used to label conflicts")

	root.AddCommand(NewMergeCommand(config))
	root.AddCommand(NewConflictsCommand(config))

	return root
}
