package xo

import "sort"

// findInfo returns the InfoEntry for name from table, using binary search.
// table must already be sorted by Name (the spec's invariant, enforced by
// (*Handle).SetInfo); findInfo does not re-sort, matching the original's
// xo_info_find, which trusts its bsearch precondition.
func findInfo(table []InfoEntry, name string) (InfoEntry, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].Name >= name })
	if i < len(table) && table[i].Name == name {
		return table[i], true
	}
	return InfoEntry{}, false
}

// sortedByName reports whether table is already sorted by Name.
func sortedByName(table []InfoEntry) bool {
	return sort.SliceIsSorted(table, func(i, j int) bool { return table[i].Name < table[j].Name })
}
