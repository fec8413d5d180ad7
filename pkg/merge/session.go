package merge

import (
	"sort"

	"github.com/google/uuid"

	"github.com/seasonhq/scorecard/pkg/document"
	"github.com/seasonhq/scorecard/pkg/errors"
	"github.com/seasonhq/scorecard/pkg/logging"
)

// SessionState is the lifecycle state of a resolution session.
type SessionState int

const (
	// SessionOpen accepts a submission or a cancellation.
	SessionOpen SessionState = iota

	// SessionResolved is terminal: a submission was applied.
	SessionResolved

	// SessionCancelled is terminal: pending state was discarded.
	SessionCancelled
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case SessionOpen:
		return "open"
	case SessionResolved:
		return "resolved"
	case SessionCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Session holds the pending conflicts of one merge result while a human
// picks winners. A session's mutable state is owned by exactly one caller
// at a time; concurrent use must be serialized by the caller.
type Session struct {
	id      uuid.UUID
	state   SessionState
	result  *Result
	pending map[string]Conflict
	order   []string
}

// OpenSession starts resolving a merge result's conflicts. It fails with
// ErrNoConflicts when there is nothing to resolve; callers with a clean
// merge apply the merged document directly.
func OpenSession(result *Result) (*Session, error) {
	if result == nil || !result.HasConflicts() {
		return nil, errors.ErrNoConflicts
	}
	s := &Session{
		id:      uuid.New(),
		state:   SessionOpen,
		result:  result,
		pending: make(map[string]Conflict, len(result.Conflicts)),
		order:   make([]string, 0, len(result.Conflicts)),
	}
	for _, c := range result.Conflicts {
		key := c.Key()
		if _, seen := s.pending[key]; !seen {
			s.order = append(s.order, key)
		}
		s.pending[key] = c
	}
	logging.Debug().
		Str("session", s.id.String()).
		Int("conflicts", len(s.order)).
		Msg("resolution session opened")
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() SessionState { return s.state }

// Pending returns the open conflicts in stable first-encountered order.
func (s *Session) Pending() []Conflict {
	out := make([]Conflict, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.pending[key])
	}
	return out
}

// Submit applies one selection per open conflict and returns the final
// document: the merged document with every conflicting leaf replaced by
// its chosen value. Submission is atomic: a missing path fails with
// IncompleteSelection, an unrecognized path with UnknownConflict, and in
// either case nothing is applied and the session stays open. On success
// the session transitions to resolved.
func (s *Session) Submit(selections map[string]document.Value) (*document.Mapping, error) {
	if s.state != SessionOpen {
		return nil, errors.NewSessionStateError("submit", s.state.String())
	}

	var missing []string
	for _, key := range s.order {
		if _, ok := selections[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewIncompleteSelectionError(missing)
	}

	var unknown []string
	for key := range selections {
		if _, ok := s.pending[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.NewUnknownConflictError(unknown)
	}

	final := s.result.Document.Clone()
	for _, key := range s.order {
		c := s.pending[key]
		if !document.Set(final, c.Path, selections[key]) {
			logging.Warn().
				Str("session", s.id.String()).
				Str("path", key).
				Msg("conflict path not found in merged document")
		}
	}

	s.state = SessionResolved
	s.pending = nil
	s.order = nil
	logging.Debug().
		Str("session", s.id.String()).
		Msg("resolution session resolved")
	return final, nil
}

// Cancel discards all pending state and transitions to cancelled. It is a
// no-op on a session that has already reached a terminal state.
func (s *Session) Cancel() {
	if s.state != SessionOpen {
		return
	}
	logging.Debug().
		Str("session", s.id.String()).
		Msg("resolution session cancelled")
	s.state = SessionCancelled
	s.pending = nil
	s.order = nil
}
