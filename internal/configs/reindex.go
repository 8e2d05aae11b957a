package configs

import "sort"

// Reindex normalizes a collection's order values after one entry has been
// edited or added. The edited entry's declared order is a request for
// relative position: all other entries keep their current relative order,
// the edited entry inserts at the requested rank, and entries at the same
// or a higher rank shift down by one. The result is always a contiguous
// 1..N sequence.
func Reindex(entries []NamedEntry, editedID string, requestedOrder int) []NamedEntry {
	var edited *NamedEntry
	others := make([]NamedEntry, 0, len(entries))
	for i := range entries {
		if entries[i].ID == editedID {
			e := entries[i]
			edited = &e
			continue
		}
		others = append(others, entries[i])
	}

	sort.SliceStable(others, func(i, j int) bool {
		return others[i].Order < others[j].Order
	})

	if edited == nil {
		// Nothing to prioritize; just renumber.
		for i := range others {
			others[i].Order = i + 1
		}
		return others
	}

	pos := requestedOrder
	if pos < 1 {
		pos = 1
	}
	if pos > len(others)+1 {
		pos = len(others) + 1
	}

	out := make([]NamedEntry, 0, len(others)+1)
	out = append(out, others[:pos-1]...)
	out = append(out, *edited)
	out = append(out, others[pos-1:]...)

	for i := range out {
		out[i].Order = i + 1
	}
	return out
}
