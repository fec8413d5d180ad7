package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seasonhq/scorecard/pkg/document"
)

func TestParseShowKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want document.ShowKey
	}{
		{
			name: "department and production",
			raw:  "Community::Recreational Classes",
			want: document.ShowKey{Department: "Community", Production: "Recreational Classes"},
		},
		{
			name: "no separator means production only",
			raw:  "Nutcracker",
			want: document.ShowKey{Production: "Nutcracker"},
		},
		{
			name: "extra separator stays in the production",
			raw:  "a::b::c",
			want: document.ShowKey{Department: "a", Production: "b::c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := document.ParseShowKey(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.Key(), "Key must round-trip the raw form")
		})
	}
}

func TestPathStrings(t *testing.T) {
	perShow := document.Path{
		document.Section("per_show_answers"),
		document.ShowKey{Department: "Community", Production: "Recreational Classes"},
		document.QuestionID("COMM_REC_Q2a"),
		document.SubField("primary"),
	}
	assert.Equal(t, "per_show_answers.Community::Recreational Classes.COMM_REC_Q2a.primary", perShow.String())
	assert.Equal(t, "per_show_answers.Community::Recreational Classes.COMM_REC_Q2a › primary", perShow.DebugString())

	kpi := document.Path{
		document.Section("financial_kpis_actuals"),
		document.KPIKey{Area: "DONATIONS", Category: "General", SubCategory: "–"},
		document.SubField("actual"),
	}
	assert.Equal(t, "financial_kpis_actuals.DONATIONS/General/–.actual", kpi.String())
	assert.Equal(t, "financial_kpis_actuals.DONATIONS/General/– › actual", kpi.DebugString())

	leaf := document.Path{document.Section("answers"), document.QuestionID("ATI01")}
	assert.Equal(t, "answers.ATI01", leaf.DebugString())
}

func TestKPIKeyOfNormalizesMissingComponents(t *testing.T) {
	entry := document.NewMapping()
	entry.Set("area", document.String("DONATIONS"))
	entry.Set("sub_category", document.Null())
	entry.Set("actual", document.Number(5))

	key := document.KPIKeyOf(entry)
	assert.Equal(t, document.KPIKey{
		Area:        "DONATIONS",
		Category:    document.MissingKeyComponent,
		SubCategory: document.MissingKeyComponent,
	}, key)
	assert.True(t, key.Matches(entry))
}

func TestSetNestedValue(t *testing.T) {
	doc := mustDecode(t, `{
		"answers": {"Q1": {"primary": "old"}},
		"financial_kpis_actuals": [
			{"area": "DONATIONS", "category": "General", "sub_category": "–", "actual": 100000}
		]
	}`)

	ok := document.Set(doc, document.Path{
		document.Section("answers"),
		document.QuestionID("Q1"),
		document.SubField("primary"),
	}, document.String("new"))
	require.True(t, ok)

	answers, _ := doc.Get("answers")
	q1, _ := answers.Mapping().Get("Q1")
	primary, _ := q1.Mapping().Get("primary")
	assert.Equal(t, "new", primary.Text())

	ok = document.Set(doc, document.Path{
		document.Section("financial_kpis_actuals"),
		document.KPIKey{Area: "DONATIONS", Category: "General", SubCategory: "–"},
		document.SubField("actual"),
	}, document.Number(150000))
	require.True(t, ok)

	kpis, _ := doc.Get("financial_kpis_actuals")
	actual, _ := kpis.Items()[0].Mapping().Get("actual")
	assert.Equal(t, float64(150000), actual.Number())
}

func TestSetMissingPath(t *testing.T) {
	doc := mustDecode(t, `{"answers": {}}`)
	ok := document.Set(doc, document.Path{
		document.Section("answers"),
		document.QuestionID("missing"),
		document.SubField("primary"),
	}, document.String("x"))
	assert.False(t, ok)
}

func mustDecode(t *testing.T, data string) *document.Mapping {
	t.Helper()
	doc, err := document.Decode([]byte(data))
	require.NoError(t, err)
	return doc
}
