package merge

import "github.com/seasonhq/scorecard/pkg/document"

// Conflict records one field where two or more contributors supplied
// non-default values that disagree. MergedValue is the automatic tie-break
// already applied to the merged document; interactive consumers replace it
// through a resolution session.
type Conflict struct {
	Path        document.Path
	Candidates  []Candidate
	MergedValue document.Value
}

// Key returns the stable path identity a resolution selection refers to.
func (c Conflict) Key() string {
	return c.Path.String()
}
