package merge

import (
	"time"

	"github.com/seasonhq/scorecard/pkg/document"
	"github.com/seasonhq/scorecard/pkg/errors"
	"github.com/seasonhq/scorecard/pkg/logging"
)

// KPISection is the top-level section merged as an identity-keyed list
// instead of through the generic mapping rules.
const KPISection = "financial_kpis_actuals"

// Source is one contributor's document, tagged with where it came from.
type Source struct {
	Name     string
	Document *document.Mapping
}

// Merger merges scorecard documents under a configured policy.
type Merger struct {
	policy Policy
}

// Option configures a Merger
type Option func(*Merger) error

// WithPolicy sets the merge policy
func WithPolicy(policy Policy) Option {
	return func(m *Merger) error {
		if policy < NonDefaultWins || policy > AlwaysConflict {
			return errors.NewValidationError("policy", policy, "unknown merge policy")
		}
		m.policy = policy
		return nil
	}
}

// New creates a new Merger with options
func New(opts ...Option) (*Merger, error) {
	m := &Merger{policy: NonDefaultWins}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Merge combines the documents into one. Inputs are never mutated and the
// output aliases none of their nested structure. Merging a single document
// returns it unchanged with zero conflicts.
func (m *Merger) Merge(sources []Source) *Result {
	start := time.Now()

	result := &Result{
		Document: document.NewMapping(),
		Sources:  make([]string, 0, len(sources)),
	}
	for _, src := range sources {
		result.Sources = append(result.Sources, src.Name)
	}
	result.Stats.SourcesMerged = len(sources)

	switch len(sources) {
	case 0:
		// Nothing to merge.
	case 1:
		result.Document = sources[0].Document.Clone()
		result.Stats.FieldsMerged, result.Stats.KPIsMerged = countFields(result.Document, true)
	default:
		srcs := make([]mappingSource, len(sources))
		for i, src := range sources {
			srcs[i] = mappingSource{source: src.Name, m: src.Document}
		}
		var walk walkStats
		result.Document, result.Conflicts = m.mergeMapping(nil, srcs, &walk)
		result.Stats.FieldsMerged = walk.fields
		result.Stats.KPIsMerged = walk.kpis
	}

	result.Stats.ConflictsDetected = len(result.Conflicts)
	result.Stats.Duration = time.Since(start)

	logging.Debug().
		Int("sources", result.Stats.SourcesMerged).
		Int("fields", result.Stats.FieldsMerged).
		Int("kpis", result.Stats.KPIsMerged).
		Int("conflicts", result.Stats.ConflictsDetected).
		Dur("duration", result.Stats.Duration).
		Msg("merged scorecards")

	return result
}

// mappingSource is one source's copy of a nested mapping during traversal.
type mappingSource struct {
	source string
	m      *document.Mapping
}

type walkStats struct {
	fields int
	kpis   int
}

// mergeMapping merges the sources' copies of one nested mapping. Key order
// is the first source's order, then keys only later sources have, in their
// order. The traversal is depth-first pre-order; conflict order in the
// result follows it exactly.
func (m *Merger) mergeMapping(path document.Path, srcs []mappingSource, stats *walkStats) (*document.Mapping, []Conflict) {
	out := document.NewMapping()
	var conflicts []Conflict

	var keys []string
	seen := make(map[string]bool)
	for _, src := range srcs {
		for _, key := range src.m.Keys() {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}

	for _, key := range keys {
		var candidates []Candidate
		for _, src := range srcs {
			if v, ok := src.m.Get(key); ok {
				candidates = append(candidates, Candidate{Source: src.source, Value: v})
			}
		}

		childPath := path.Child(childSegment(path, key))

		if len(path) == 0 && key == KPISection && allSequences(candidates) {
			lists := make([]sourceList, len(candidates))
			for i, c := range candidates {
				lists[i] = sourceList{source: c.Source, items: c.Value.Items()}
			}
			merged, kpiConflicts, entries := mergeKeyedList(m.policy, childPath, lists)
			out.Set(key, merged)
			conflicts = append(conflicts, kpiConflicts...)
			stats.kpis += entries
			continue
		}

		if allMappings(candidates) {
			children := make([]mappingSource, len(candidates))
			for i, c := range candidates {
				children[i] = mappingSource{source: c.Source, m: c.Value.Mapping()}
			}
			merged, childConflicts := m.mergeMapping(childPath, children, stats)
			out.Set(key, document.FromMapping(merged))
			conflicts = append(conflicts, childConflicts...)
			continue
		}

		// Scalars, sequences, and shape mismatches are opaque values
		// compared by deep structural equality.
		value, conflicting, isConflict := Reconcile(m.policy, candidates)
		out.Set(key, value.Clone())
		stats.fields++
		if isConflict {
			conflicts = append(conflicts, Conflict{
				Path:        childPath,
				Candidates:  conflicting,
				MergedValue: value,
			})
		}
	}

	return out, conflicts
}

// childSegment types the path segment for a child key based on where the
// traversal currently is. Unknown sections stay generic Section segments.
func childSegment(parent document.Path, key string) document.Segment {
	if len(parent) == 0 {
		return document.Section(key)
	}
	switch last := parent[len(parent)-1].(type) {
	case document.Section:
		if len(parent) == 1 {
			switch string(last) {
			case "answers":
				return document.QuestionID(key)
			case "per_show_answers":
				return document.ParseShowKey(key)
			}
		}
		return document.Section(key)
	case document.ShowKey:
		return document.QuestionID(key)
	case document.QuestionID, document.SubField:
		return document.SubField(key)
	default:
		return document.Section(key)
	}
}

func allMappings(candidates []Candidate) bool {
	for _, c := range candidates {
		if c.Value.Kind() != document.KindMapping {
			return false
		}
	}
	return len(candidates) > 0
}

func allSequences(candidates []Candidate) bool {
	for _, c := range candidates {
		if c.Value.Kind() != document.KindSequence {
			return false
		}
	}
	return len(candidates) > 0
}

// countFields counts leaf fields and KPI entries of a document, used for
// the stats of a single-source merge that skips the traversal.
func countFields(m *document.Mapping, topLevel bool) (fields, kpis int) {
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		if topLevel && key == KPISection && v.Kind() == document.KindSequence {
			kpis += len(v.Items())
			continue
		}
		if v.Kind() == document.KindMapping {
			f, k := countFields(v.Mapping(), false)
			fields += f
			kpis += k
			continue
		}
		fields++
	}
	return fields, kpis
}
