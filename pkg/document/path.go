package document

import "strings"

// ShowKeySeparator splits a per-show key into department and production.
const ShowKeySeparator = "::"

// MissingKeyComponent is the placeholder substituted for an absent or empty
// KPI identity component. KPI rows without a sub-category carry it already.
const MissingKeyComponent = "–"

// Segment is one typed step of a conflict path. Paths are built once during
// merge traversal and flattened to strings only for display, so conflict
// labeling never re-parses document keys.
type Segment interface {
	// Key returns the raw document key this segment addresses.
	Key() string
	segment()
}

// Section is a named document section, e.g. "answers" or "meta".
type Section string

// Key returns the section name.
func (s Section) Key() string { return string(s) }

func (Section) segment() {}

// ShowKey addresses one department/production pair under per_show_answers.
type ShowKey struct {
	Department string
	Production string
}

// ParseShowKey splits a raw per-show key on the first "::" occurrence.
// A key without a separator becomes a production with an empty department.
func ParseShowKey(raw string) ShowKey {
	dept, prod, found := strings.Cut(raw, ShowKeySeparator)
	if !found {
		return ShowKey{Production: raw}
	}
	return ShowKey{Department: dept, Production: prod}
}

// Key reconstructs the raw document key.
func (s ShowKey) Key() string {
	if s.Department == "" {
		return s.Production
	}
	return s.Department + ShowKeySeparator + s.Production
}

func (ShowKey) segment() {}

// QuestionID addresses one question's answer.
type QuestionID string

// Key returns the question identifier.
func (q QuestionID) Key() string { return string(q) }

func (QuestionID) segment() {}

// KPIKey is the composite identity of a financial KPI entry. List position
// carries no identity; two entries with the same KPIKey are the same line.
type KPIKey struct {
	Area        string
	Category    string
	SubCategory string
}

// KPIKeyOf extracts the normalized identity of a KPI entry. Missing, null,
// or empty components normalize to MissingKeyComponent instead of failing.
func KPIKeyOf(entry *Mapping) KPIKey {
	return KPIKey{
		Area:        kpiComponent(entry, "area"),
		Category:    kpiComponent(entry, "category"),
		SubCategory: kpiComponent(entry, "sub_category"),
	}
}

func kpiComponent(entry *Mapping, name string) string {
	v, ok := entry.Get(name)
	if !ok {
		return MissingKeyComponent
	}
	switch v.Kind() {
	case KindString:
		if v.Text() == "" {
			return MissingKeyComponent
		}
		return v.Text()
	case KindNumber:
		return v.String()
	default:
		return MissingKeyComponent
	}
}

// Matches reports whether the entry has this identity.
func (k KPIKey) Matches(entry *Mapping) bool {
	return KPIKeyOf(entry) == k
}

// Key returns the slash-joined identity used in display paths.
func (k KPIKey) Key() string {
	return k.Area + "/" + k.Category + "/" + k.SubCategory
}

func (KPIKey) segment() {}

// SubField addresses a named sub-answer of a question, e.g. "primary".
type SubField string

// Key returns the sub-field name.
func (f SubField) Key() string { return string(f) }

func (SubField) segment() {}

// Path is the ordered segment list addressing one field of a document.
type Path []Segment

// Child returns a new path extended by one segment. The backing array is
// never shared with the receiver, so sibling paths cannot clobber each other.
func (p Path) Child(seg Segment) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

// String joins the raw segment keys with dots. It is the stable identity a
// resolution selection refers to.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.Key()
	}
	return strings.Join(parts, ".")
}

// DebugString renders the path for display, setting a trailing sub-field
// apart with " › " the way the review screen shows it.
func (p Path) DebugString() string {
	if len(p) == 0 {
		return ""
	}
	if f, ok := p[len(p)-1].(SubField); ok && len(p) > 1 {
		return Path(p[:len(p)-1]).String() + " › " + f.Key()
	}
	return p.String()
}

// Set replaces the value addressed by path inside root, cloning the new
// value first. It reports false when the path does not resolve, which for
// paths produced by a merge of the same document cannot happen.
func Set(root *Mapping, path Path, v Value) bool {
	if root == nil || len(path) == 0 {
		return false
	}
	seg := path[0]
	if len(path) == 1 {
		root.Set(seg.Key(), v.Clone())
		return true
	}
	child, ok := root.Get(seg.Key())
	if !ok {
		return false
	}
	if key, isKPI := path[1].(KPIKey); isKPI {
		if child.Kind() != KindSequence {
			return false
		}
		for _, item := range child.Items() {
			if item.Kind() != KindMapping || !key.Matches(item.Mapping()) {
				continue
			}
			if len(path) == 2 {
				return false // a KPI entry itself is never a leaf
			}
			return Set(item.Mapping(), path[2:], v)
		}
		return false
	}
	if child.Kind() != KindMapping {
		return false
	}
	return Set(child.Mapping(), path[1:], v)
}
