package schedule

import "sort"

// Overlaps reports whether two half-open intervals intersect.
func Overlaps(a, b Entry) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// SortByStart sorts entries by start time; equal starts keep input order.
func SortByStart(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start.Before(entries[j].Start)
	})
}

// GroupOverlaps partitions one day's entries into overlap groups.
//
// The pass is greedy and forward-only: each entry is tested against the
// members of the most recent group only. An entry that overlaps an earlier,
// already closed group is not merged back into it.
func GroupOverlaps(entries []Entry) [][]Entry {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	SortByStart(sorted)

	groups := [][]Entry{{sorted[0]}}
	for _, e := range sorted[1:] {
		current := groups[len(groups)-1]
		joined := false
		for _, member := range current {
			if Overlaps(e, member) {
				joined = true
				break
			}
		}
		if joined {
			groups[len(groups)-1] = append(current, e)
		} else {
			groups = append(groups, []Entry{e})
		}
	}

	return groups
}

// LayoutGroups stamps GroupIndex, ClassIndex and GroupSize onto every member
// and returns the entries flattened in group order.
func LayoutGroups(groups [][]Entry) []Entry {
	var out []Entry
	for gi, group := range groups {
		for ci, e := range group {
			e.GroupIndex = gi
			e.ClassIndex = ci
			e.GroupSize = len(group)
			out = append(out, e)
		}
	}
	return out
}

// ColumnWidth is the percentage width of one column in a group of size k.
func ColumnWidth(k int) float64 {
	if k <= 0 {
		return 100
	}
	return 100 / float64(k)
}

// ColumnLeft is the percentage offset of column i in a group of size k.
func ColumnLeft(i, k int) float64 {
	return float64(i) * ColumnWidth(k)
}
