package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/seasonhq/scorecard/cmd/scoremerge/app"
	"github.com/seasonhq/scorecard/pkg/document"
	"github.com/seasonhq/scorecard/pkg/errors"
	"github.com/seasonhq/scorecard/pkg/labels"
	"github.com/seasonhq/scorecard/pkg/logging"
	"github.com/seasonhq/scorecard/pkg/merge"
)

// NewMergeCommand creates the merge command.
func NewMergeCommand(config *app.Config) *cobra.Command {
	var (
		output      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "merge <file>...",
		Short: "Merge scorecard files into one document",
		Long: `Merge combines two or more scorecard files (JSON or YAML) into one
document. Conflicting fields are reported; with --interactive they are
resolved one by one on the terminal before the merged document is written.`,
		Example: `  scoremerge merge alice.json bob.json > merged.json
  scoremerge merge --interactive --questions questions.csv drafts/*.json
  scoremerge merge --policy last-wins a.yaml b.yaml -o merged.yaml --format yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runMerge(config, args)
			if err != nil {
				return err
			}

			reg := loadRegistry(config)
			final := result.Document

			if result.HasConflicts() {
				fmt.Fprintln(cmd.ErrOrStderr(), labels.FormatConflicts(result.Conflicts, reg))
				if interactive {
					final, err = resolveInteractively(cmd.InOrStdin(), cmd.ErrOrStderr(), result, reg)
					if err != nil {
						return err
					}
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(),
						"Conflicts resolved automatically (last edited value wins); rerun with --interactive to choose.")
				}
			}

			if err := writeDocument(final, config.Format, output); err != nil {
				return err
			}
			logging.Ctx(cmd.Context()).Debug().
				Int("conflicts", len(result.Conflicts)).
				Str("output", output).
				Msg("merge written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&config.Format, "format", config.Format, "output format (json, yaml)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "resolve conflicts interactively")

	return cmd
}

// resolveInteractively walks the pending conflicts, prompting for a
// candidate number for each, and submits the selections in one shot.
func resolveInteractively(in io.Reader, out io.Writer, result *merge.Result, reg labels.Registry) (*document.Mapping, error) {
	session, err := merge.OpenSession(result)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(in)
	selections := make(map[string]document.Value)

	for _, conflict := range session.Pending() {
		label := labels.Resolve(conflict, reg)
		fmt.Fprintf(out, "\n%s\n%s\n", label.DisplayHeader(), label.DisplaySubheader())
		for i, candidate := range conflict.Candidates {
			fmt.Fprintf(out, "  [%d] %s: %s\n", i+1, candidate.Source, candidate.Value)
		}
		if diff := candidateDiff(conflict.Candidates); diff != "" {
			fmt.Fprintln(out, indent(diff, "      "))
		}

		choice, err := promptChoice(scanner, out, len(conflict.Candidates))
		if err != nil {
			session.Cancel()
			return nil, err
		}
		selections[conflict.Key()] = conflict.Candidates[choice].Value
	}

	return session.Submit(selections)
}

// promptChoice reads a 1-based candidate number; "q" cancels.
func promptChoice(scanner *bufio.Scanner, out io.Writer, count int) (int, error) {
	for {
		fmt.Fprintf(out, "Choose [1-%d] (q to cancel): ", count)
		if !scanner.Scan() {
			return 0, errors.New("input closed before all conflicts were resolved")
		}
		answer := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(answer, "q") {
			return 0, errors.New("resolution cancelled")
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= count {
			return n - 1, nil
		}
		fmt.Fprintf(out, "Invalid choice %q.\n", answer)
	}
}

// candidateDiff renders a unified diff between the first and last
// conflicting candidates when both are multi-line text; for anything
// shorter the plain candidate listing is easier to read.
func candidateDiff(candidates []merge.Candidate) string {
	if len(candidates) < 2 {
		return ""
	}
	first, last := candidates[0], candidates[len(candidates)-1]
	if first.Value.Kind() != document.KindString || last.Value.Kind() != document.KindString {
		return ""
	}
	a, b := first.Value.Text(), last.Value.Text()
	if !strings.Contains(a, "\n") && !strings.Contains(b, "\n") {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: first.Source,
		ToFile:   last.Source,
		Context:  2,
	})
	if err != nil {
		return ""
	}
	return strings.TrimRight(diff, "\n")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
