package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/seasonhq/scorecard/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestIncompleteSelectionError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IncompleteSelectionError{
			Missing: []string{"answers.Q1.primary", "answers.Q2.primary"},
		}
		assert.Equal(t, "incomplete selection: 2 conflict(s) unresolved: answers.Q1.primary, answers.Q2.primary", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrIncompleteSelection))
		assert.True(t, pkgerrors.IsIncompleteSelection(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewIncompleteSelectionError([]string{"answers.Q1.primary"})
		require.NotNil(t, err)
		assert.Equal(t, []string{"answers.Q1.primary"}, err.Missing)
	})

	t.Run("errors.As", func(t *testing.T) {
		var target *pkgerrors.IncompleteSelectionError
		err := error(pkgerrors.NewIncompleteSelectionError([]string{"x"}))
		require.True(t, errors.As(err, &target))
		assert.Equal(t, []string{"x"}, target.Missing)
	})
}

func TestUnknownConflictError(t *testing.T) {
	err := pkgerrors.NewUnknownConflictError([]string{"answers.NOPE.primary"})
	assert.Equal(t, "selection references unknown conflict(s): answers.NOPE.primary", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrUnknownConflict))
	assert.True(t, pkgerrors.IsUnknownConflict(err))
	assert.False(t, pkgerrors.IsIncompleteSelection(err))
}

func TestSessionStateError(t *testing.T) {
	err := pkgerrors.NewSessionStateError("submit", "cancelled")
	assert.Equal(t, "cannot submit: session is cancelled", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrSessionClosed))
	assert.True(t, pkgerrors.IsSessionClosed(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("policy", "bogus", "unknown merge policy")
		assert.Equal(t, "validation failed for field policy: unknown merge policy", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad input"}
		assert.Equal(t, "validation failed: bad input", err.Error())
	})
}

func TestParseError(t *testing.T) {
	inner := errors.New("unexpected token")

	t.Run("without file", func(t *testing.T) {
		err := pkgerrors.NewParseError("csv", "unexpected token", inner)
		assert.Equal(t, "csv parse error: unexpected token", err.Error())
		assert.True(t, errors.Is(err, inner))
	})

	t.Run("with file", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "document", File: "alice.json", Message: "bad syntax"}
		assert.Equal(t, "parse error in document file alice.json: bad syntax", err.Error())
	})
}

func TestIOError(t *testing.T) {
	inner := errors.New("permission denied")
	err := pkgerrors.NewIOError("read", "/tmp/scorecard.json", inner)
	assert.Contains(t, err.Error(), "read")
	assert.Contains(t, err.Error(), "/tmp/scorecard.json")
	assert.True(t, errors.Is(err, inner))
}

func TestWrapIO(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapIO("read", "/tmp/x", nil))

	inner := errors.New("boom")
	err := pkgerrors.WrapIO("write", "/tmp/x", inner)
	require.Error(t, err)
	assert.True(t, errors.Is(err, inner))
}

func TestIsNoConflicts(t *testing.T) {
	assert.True(t, pkgerrors.IsNoConflicts(pkgerrors.ErrNoConflicts))
	assert.False(t, pkgerrors.IsNoConflicts(errors.New("other")))
	assert.False(t, pkgerrors.IsNoConflicts(nil))
}
