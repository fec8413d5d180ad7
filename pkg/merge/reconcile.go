package merge

import "github.com/seasonhq/scorecard/pkg/document"

// Candidate is one contributor's proposed value for one field. Candidate
// order is upload order and is never reordered: it determines both the
// automatic tie-break and the order candidates are shown for resolution.
type Candidate struct {
	Source string
	Value  document.Value
}

// Reconcile resolves a field's candidates into a merged value under the
// given policy. When the candidates genuinely disagree it returns the
// subset in conflict (in input order) and true; the merged value is then
// the deterministic tie-break for non-interactive consumers.
func Reconcile(policy Policy, candidates []Candidate) (document.Value, []Candidate, bool) {
	if len(candidates) == 0 {
		return document.Null(), nil, false
	}
	if len(candidates) == 1 {
		return candidates[0].Value, nil, false
	}

	switch policy {
	case LastWins:
		return candidates[len(candidates)-1].Value, nil, false

	case FirstWins:
		return candidates[0].Value, nil, false

	case AlwaysConflict:
		if allEqual(candidates) {
			return candidates[0].Value, nil, false
		}
		// Tie-break mirrors NonDefaultWins: last candidate in input order.
		return candidates[len(candidates)-1].Value, candidates, true

	default: // NonDefaultWins
		var edited []Candidate
		for _, c := range candidates {
			if !IsDefault(c.Value) {
				edited = append(edited, c)
			}
		}
		switch {
		case len(edited) == 0:
			// All untouched; any of them serves. Take the last for determinism.
			return candidates[len(candidates)-1].Value, nil, false
		case len(edited) == 1:
			return edited[0].Value, nil, false
		case allEqual(edited):
			return edited[0].Value, nil, false
		default:
			return edited[len(edited)-1].Value, edited, true
		}
	}
}

func allEqual(candidates []Candidate) bool {
	first := candidates[0].Value
	for _, c := range candidates[1:] {
		if !c.Value.Equal(first) {
			return false
		}
	}
	return true
}
