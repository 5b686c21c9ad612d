package protocol

import "sort"

// SortCanonical orders records in the default load order: overall risk
// severity first (critical before bad before warning before good before
// neutral), then slug, so equal-severity records always come back in
// the same order.
func SortCanonical(records []Protocol) {
	sort.SliceStable(records, func(i, j int) bool {
		oi := SeverityOrder[records[i].OverallRisk]
		oj := SeverityOrder[records[j].OverallRisk]
		if oi != oj {
			return oi < oj
		}
		return records[i].Slug < records[j].Slug
	})
}
