package merge

import "github.com/seasonhq/scorecard/pkg/document"

// IsDefault reports whether a value is indistinguishable from a field the
// contributor never touched: numeric zero, the empty string, null, an empty
// sequence, or an empty mapping. Booleans are always considered edited,
// since an untouched checkbox is simply absent from the document.
func IsDefault(v document.Value) bool {
	switch v.Kind() {
	case document.KindNull:
		return true
	case document.KindNumber:
		return v.Number() == 0
	case document.KindString:
		return v.Text() == ""
	case document.KindSequence:
		return len(v.Items()) == 0
	case document.KindMapping:
		return v.Mapping().Len() == 0
	default:
		return false
	}
}
