// Package registry implements the question registry collaborator: a
// read-only lookup from question id to display text and section label,
// loaded from the question-configuration CSV that also drives the form.
// The merge core only ever sees the labels.Registry interface.
package registry

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/seasonhq/scorecard/pkg/errors"
	"github.com/seasonhq/scorecard/pkg/logging"
)

// Questions is an immutable registry of question metadata. Construct it
// once and pass it into label resolution; it is never mutated afterwards.
type Questions struct {
	byID map[string]question
}

type question struct {
	text       string
	section    string
	pillar     string
	department string
}

// New returns an empty registry. Lookups on it report absence, which the
// label resolver handles by falling back.
func New() *Questions {
	return &Questions{byID: make(map[string]question)}
}

// Load reads a question-configuration CSV. The header row names the
// columns; recognized ones are question_id, question_text, section,
// strategic_pillar, and department. Malformed rows are skipped rather
// than failing the load: a partially usable registry beats none.
func Load(r io.Reader) (*Questions, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return New(), nil
		}
		return nil, errors.NewParseError("csv", err.Error(), err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	col := func(name string) int {
		if i, ok := columns[name]; ok {
			return i
		}
		return -1
	}
	idCol := col("question_id")
	if idCol < 0 {
		return nil, errors.NewParseError("csv", "missing question_id column", nil)
	}
	textCol := col("question_text")
	sectionCol := col("section")
	pillarCol := col("strategic_pillar")
	departmentCol := col("department")

	q := New()
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		id := field(record, idCol)
		if id == "" {
			skipped++
			continue
		}
		q.byID[id] = question{
			text:       field(record, textCol),
			section:    field(record, sectionCol),
			pillar:     field(record, pillarCol),
			department: field(record, departmentCol),
		}
	}

	if skipped > 0 {
		logging.Warn().
			Int("skipped", skipped).
			Int("loaded", len(q.byID)).
			Msg("skipped malformed question rows")
	}
	return q, nil
}

// LoadFile reads a question-configuration CSV from disk.
func LoadFile(path string) (*Questions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer f.Close()
	return Load(f)
}

// field returns a trimmed record field, or "" when the column is absent.
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// QuestionText returns the display text of a question.
func (q *Questions) QuestionText(questionID string) (string, bool) {
	entry, ok := q.byID[questionID]
	if !ok || entry.text == "" {
		return "", false
	}
	return entry.text, true
}

// SectionLabel returns the most specific non-empty grouping the registry
// knows for a question: section, then strategic pillar, then department.
func (q *Questions) SectionLabel(questionID string) (string, bool) {
	entry, ok := q.byID[questionID]
	if !ok {
		return "", false
	}
	for _, label := range []string{entry.section, entry.pillar, entry.department} {
		if label != "" {
			return label, true
		}
	}
	return "", false
}

// Has reports whether the registry knows a question id.
func (q *Questions) Has(questionID string) bool {
	_, ok := q.byID[questionID]
	return ok
}

// Len returns the number of loaded questions.
func (q *Questions) Len() int {
	return len(q.byID)
}
