// Package merge combines scorecard documents filled out independently by
// multiple contributors into one, detecting the fields where contributors
// genuinely disagree. The engine is a pure function of the input documents
// and a policy: it performs no I/O, never mutates its inputs, and turns
// ambiguity into conflict records instead of errors.
package merge

import "github.com/seasonhq/scorecard/pkg/errors"

// Policy decides how a field's candidate values are reconciled.
type Policy int

const (
	// NonDefaultWins prefers edited values over untouched defaults and
	// flags a conflict only when two or more edited values disagree.
	// This is the default policy.
	NonDefaultWins Policy = iota

	// LastWins takes the last uploaded value, never flagging a conflict.
	LastWins

	// FirstWins takes the first uploaded value, never flagging a conflict.
	FirstWins

	// AlwaysConflict flags every disagreement regardless of default status,
	// forcing manual resolution.
	AlwaysConflict
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case NonDefaultWins:
		return "non-default-wins"
	case LastWins:
		return "last-wins"
	case FirstWins:
		return "first-wins"
	case AlwaysConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name as accepted on the command line.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "non-default-wins", "":
		return NonDefaultWins, nil
	case "last-wins":
		return LastWins, nil
	case "first-wins":
		return FirstWins, nil
	case "conflict":
		return AlwaysConflict, nil
	default:
		return NonDefaultWins, errors.NewValidationError("policy", s, "unknown merge policy")
	}
}
