package labels

import (
	"fmt"
	"strings"

	"github.com/seasonhq/scorecard/pkg/merge"
)

// FormatConflicts renders a human-readable report of all conflicts for
// terminal or log output. The registry may be nil.
func FormatConflicts(conflicts []merge.Conflict, registry Registry) string {
	if len(conflicts) == 0 {
		return "No conflicts detected."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⚠️  %d conflict(s) detected:\n", len(conflicts))

	for i, c := range conflicts {
		label := Resolve(c, registry)
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, label.DisplayHeader())
		fmt.Fprintf(&b, "   %s\n", label.DisplaySubheader())
		for _, candidate := range c.Candidates {
			fmt.Fprintf(&b, "   - %s: %s\n", candidate.Source, candidate.Value)
		}
	}

	return b.String()
}
