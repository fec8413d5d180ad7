package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seasonhq/scorecard/pkg/document"
)

func TestDecodePreservesKeyOrder(t *testing.T) {
	doc := mustDecode(t, `{"zeta": 1, "alpha": 2, "mid": {"b": 1, "a": 2}}`)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, doc.Keys())

	mid, ok := doc.Get("mid")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, mid.Mapping().Keys())
}

func TestDecodeAcceptsYAML(t *testing.T) {
	doc := mustDecode(t, "meta:\n  period: Q3\nanswers:\n  Q1: yes done\n")
	meta, ok := doc.Get("meta")
	require.True(t, ok)
	period, _ := meta.Mapping().Get("period")
	assert.Equal(t, "Q3", period.Text())
}

func TestDecodeRejectsNonMapping(t *testing.T) {
	_, err := document.Decode([]byte(`[1, 2, 3]`))
	require.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	original := mustDecode(t, `{"meta": {"period": "Q3"}, "answers": {"Q1": 100000, "Q2": 1.5}}`)

	for _, format := range []document.Format{document.FormatJSON, document.FormatYAML} {
		data, err := document.Encode(original, format)
		require.NoError(t, err, format)

		decoded, err := document.Decode(data)
		require.NoError(t, err, format)
		assert.True(t, document.FromMapping(original).Equal(document.FromMapping(decoded)),
			"%s round-trip changed the document: %s", format, data)
	}
}
