package merge

import "github.com/seasonhq/scorecard/pkg/document"

// sourceList is one source's copy of an identity-keyed list.
type sourceList struct {
	source string
	items  []document.Value
}

// mergeKeyedList merges ordered lists of identity-keyed KPI entries.
// List position carries no identity: entries pair up across sources by
// their composite key. Output order is first-seen key order across sources,
// and within one source duplicate keys collapse with last-occurrence-wins
// before the cross-source merge. A source missing a key contributes no
// candidates for it; absence is not a default zero.
func mergeKeyedList(policy Policy, base document.Path, lists []sourceList) (document.Value, []Conflict, int) {
	type keyedEntry struct {
		source string
		entry  *document.Mapping
	}

	var keyOrder []document.KPIKey
	entries := make(map[document.KPIKey][]keyedEntry)

	for _, list := range lists {
		// Collapse duplicates within this source first, keeping the
		// position of the first occurrence.
		var localOrder []document.KPIKey
		local := make(map[document.KPIKey]*document.Mapping)
		for _, item := range list.items {
			if item.Kind() != document.KindMapping {
				continue // not a KPI entry; nothing to key on
			}
			key := document.KPIKeyOf(item.Mapping())
			if _, seen := local[key]; !seen {
				localOrder = append(localOrder, key)
			}
			local[key] = item.Mapping()
		}
		for _, key := range localOrder {
			if _, seen := entries[key]; !seen {
				keyOrder = append(keyOrder, key)
			}
			entries[key] = append(entries[key], keyedEntry{source: list.source, entry: local[key]})
		}
	}

	var conflicts []Conflict
	merged := make([]document.Value, 0, len(keyOrder))

	for _, key := range keyOrder {
		group := entries[key]
		out := document.NewMapping()

		// Attribute order: first-seen across the group's entries.
		var attrs []string
		seen := make(map[string]bool)
		for _, ke := range group {
			for _, attr := range ke.entry.Keys() {
				if !seen[attr] {
					seen[attr] = true
					attrs = append(attrs, attr)
				}
			}
		}

		for _, attr := range attrs {
			var candidates []Candidate
			for _, ke := range group {
				if v, ok := ke.entry.Get(attr); ok {
					candidates = append(candidates, Candidate{Source: ke.source, Value: v})
				}
			}
			value, conflicting, isConflict := Reconcile(policy, candidates)
			out.Set(attr, value.Clone())
			if isConflict {
				conflicts = append(conflicts, Conflict{
					Path:        base.Child(key).Child(document.SubField(attr)),
					Candidates:  conflicting,
					MergedValue: value,
				})
			}
		}

		merged = append(merged, document.FromMapping(out))
	}

	return document.Sequence(merged...), conflicts, len(merged)
}
