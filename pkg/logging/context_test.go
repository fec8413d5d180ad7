package logging_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seasonhq/scorecard/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("WithSource adds source to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithSource(ctx, "alice.json")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithSession adds session to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithSession(ctx, "6e1cbb51")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithFields adds custom fields to context", func(t *testing.T) {
		ctx := context.Background()
		fields := map[string]any{
			"policy":  "non-default-wins",
			"sources": 2,
		}
		ctx = logging.WithFields(ctx, fields)

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.NotNil(t, logging.FromContext(context.Background()))
		assert.NotNil(t, logging.FromContext(nil)) //nolint:staticcheck // nil fallback is part of the contract
	})

	t.Run("WithLogger round-trips", func(t *testing.T) {
		var buf strings.Builder
		logger := logging.New(&buf)
		ctx := logging.WithLogger(context.Background(), &logger)

		logging.Ctx(ctx).Info().Msg("from context")
		assert.Contains(t, buf.String(), "from context")
	})

	t.Run("chained fields reach the output", func(t *testing.T) {
		var buf strings.Builder
		logger := logging.New(&buf)
		ctx := logging.WithLogger(context.Background(), &logger)
		ctx = logging.WithSource(ctx, "bob.json")
		ctx = logging.WithOperation(ctx, "merge")

		logging.Ctx(ctx).Info().Msg("merging")
		out := buf.String()
		assert.Contains(t, out, `"source":"bob.json"`)
		assert.Contains(t, out, `"operation":"merge"`)
	})
}
