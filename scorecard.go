// Package scorecard merges structured reports filled out independently by
// multiple contributors into one document, without silently discarding
// intentional data. The heavy lifting lives in pkg/merge (merge engine and
// resolution sessions), pkg/labels (human-readable conflict labels), and
// pkg/document (the document tree model); this package is the convenience
// surface tying them together.
package scorecard

import (
	"github.com/seasonhq/scorecard/pkg/document"
	"github.com/seasonhq/scorecard/pkg/merge"
)

// Merge combines contributor documents under the given options. The result
// carries the merged document, conflicts in first-encountered order, and
// merge stats.
func Merge(sources []merge.Source, opts ...merge.Option) (*merge.Result, error) {
	merger, err := merge.New(opts...)
	if err != nil {
		return nil, err
	}
	return merger.Merge(sources), nil
}

// Resolve applies conflict selections to a merge result and returns the
// final document. A result without conflicts needs no selections and is
// returned as a fresh copy; otherwise every conflict path must be selected
// exactly once or the resolution fails atomically.
func Resolve(result *merge.Result, selections map[string]document.Value) (*document.Mapping, error) {
	if !result.HasConflicts() {
		return result.Document.Clone(), nil
	}
	session, err := merge.OpenSession(result)
	if err != nil {
		return nil, err
	}
	return session.Submit(selections)
}
