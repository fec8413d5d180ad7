package merge

import (
	"time"

	"github.com/seasonhq/scorecard/pkg/document"
)

// Result is the outcome of one merge invocation. The merged document has
// the automatic tie-breaks already applied; Conflicts lists the fields that
// still need a human decision, in the order the traversal first saw them.
type Result struct {
	// Document is the merged document. It shares no nested structure with
	// any input document.
	Document *document.Mapping

	// Conflicts in stable first-encountered order.
	Conflicts []Conflict

	// Sources that contributed, in upload order.
	Sources []string

	// Stats about the merge.
	Stats Stats
}

// Stats summarizes a merge.
type Stats struct {
	// SourcesMerged is the number of input documents.
	SourcesMerged int

	// FieldsMerged counts leaf fields outside the KPI list, each once
	// regardless of depth.
	FieldsMerged int

	// KPIsMerged counts merged KPI entries.
	KPIsMerged int

	// ConflictsDetected is len(Conflicts).
	ConflictsDetected int

	// Duration of the merge.
	Duration time.Duration
}

// HasConflicts reports whether any field needs manual resolution.
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}
