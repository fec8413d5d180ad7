// Package labels turns raw merge conflicts into human-presentable labels.
// A conflict path like "per_show_answers.Community::Recreational Classes.
// COMM_REC_Q2a › primary" means nothing to a reviewer; the resolver derives
// a section, question, and field label from the structured path, consulting
// an optional question registry and degrading through fallbacks instead of
// failing on missing registries or malformed paths.
package labels

import (
	"github.com/seasonhq/scorecard/pkg/document"
	"github.com/seasonhq/scorecard/pkg/merge"
)

// Registry is a read-only lookup of question metadata, constructed and
// loaded entirely outside the core. Both operations report absence with a
// false second return; the resolver falls back rather than failing.
type Registry interface {
	// QuestionText returns the display text of a question.
	QuestionText(questionID string) (string, bool)

	// SectionLabel returns the already-flattened section label grouping a
	// question, the most specific one the registry knows.
	SectionLabel(questionID string) (string, bool)
}

// GenericSection is the section label of last resort.
const GenericSection = "General"

// KPISectionLabel groups all financial KPI conflicts.
const KPISectionLabel = "Financial KPIs"

// Label is the human-presentable identity of one conflict.
type Label struct {
	Section  string
	Question string
	Field    string
	Debug    string
}

// DisplayHeader renders the review screen's header line.
func (l Label) DisplayHeader() string {
	return l.Section + ": " + l.Question
}

// DisplaySubheader renders the sub-line carrying the field and debug path.
func (l Label) DisplaySubheader() string {
	if l.Field == "" {
		return "(debug: " + l.Debug + ")"
	}
	return l.Field + " (debug: " + l.Debug + ")"
}

// Resolve derives the label triple for a conflict. The registry may be nil.
// Resolution is total: every fallback chain ends in a usable label.
func Resolve(c merge.Conflict, registry Registry) Label {
	parts := splitPath(c.Path)

	label := Label{
		Debug:    c.Path.DebugString(),
		Field:    fieldLabel(parts),
		Question: questionLabel(parts, registry),
		Section:  sectionLabel(parts, registry),
	}
	return label
}

// pathParts is a conflict path decomposed into the pieces labeling needs.
type pathParts struct {
	section    string // leading generic section name, if any
	showKey    *document.ShowKey
	questionID string
	kpiKey     *document.KPIKey
	subField   string
	lastKey    string // raw key of the final segment
}

func splitPath(p document.Path) pathParts {
	var parts pathParts
	for _, seg := range p {
		switch s := seg.(type) {
		case document.Section:
			if parts.section == "" {
				parts.section = string(s)
			}
		case document.ShowKey:
			key := s
			parts.showKey = &key
		case document.QuestionID:
			parts.questionID = string(s)
		case document.KPIKey:
			key := s
			parts.kpiKey = &key
		case document.SubField:
			parts.subField = string(s)
		}
	}
	if len(p) > 0 {
		parts.lastKey = p[len(p)-1].Key()
	}
	return parts
}

// fieldLabel maps a trailing sub-field to its display label. Conflicts on a
// bare answer leaf have no field label.
func fieldLabel(parts pathParts) string {
	if parts.subField == "" {
		return ""
	}
	if label, ok := fieldLabelMap[parts.subField]; ok {
		return label
	}
	return Humanize(parts.subField)
}

// questionLabel prefers registry text verbatim, then derived descriptions.
func questionLabel(parts pathParts, registry Registry) string {
	if parts.questionID != "" {
		if registry != nil {
			if text, ok := registry.QuestionText(parts.questionID); ok && text != "" {
				return text
			}
		}
		return Humanize(parts.questionID)
	}
	if parts.kpiKey != nil {
		return KPIDescription(*parts.kpiKey)
	}
	if parts.lastKey != "" {
		return Humanize(parts.lastKey)
	}
	return GenericSection
}

// sectionLabel walks the fallback chain: KPI grouping, production name from
// the path, registry grouping, question-id prefix, leading path section,
// then the generic label. The production name wins over a registry because
// the path is more specific than any registry grouping.
func sectionLabel(parts pathParts, registry Registry) string {
	if parts.kpiKey != nil {
		return KPISectionLabel
	}
	if parts.showKey != nil && parts.showKey.Production != "" {
		return parts.showKey.Production
	}
	if parts.questionID != "" {
		if registry != nil {
			if label, ok := registry.SectionLabel(parts.questionID); ok && label != "" {
				return label
			}
		}
		if derived := SectionFromQuestionID(parts.questionID); derived != "" {
			return derived
		}
	}
	if parts.section != "" && !genericContainers[parts.section] {
		return Humanize(parts.section)
	}
	return GenericSection
}

// genericContainers are structural section names that make poor labels.
var genericContainers = map[string]bool{
	"answers":          true,
	"per_show_answers": true,
	"meta":             true,
	merge.KPISection:   true,
}

// fieldLabelMap carries display labels for the sub-answer fields the form
// produces.
var fieldLabelMap = map[string]string{
	"primary":     "Primary answer",
	"description": "Description/Notes",
	"notes":       "Notes",
	"actual":      "Actual value",
}
