// Package scoring holds the pure presentation aggregates derived from
// protocol records: dimension averages, coarse buckets, category
// classification, risk tallies, and sort order. Nothing here mutates a
// record and nothing here is persisted.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog/log"

	"github.com/sachben91/agent-protocol-risk/domain/protocol"
)

// dimensionOrdinal maps a dimension score to its numeric severity for
// averaging: good 0, warning 1, bad 2, critical 3. This scale is
// distinct from protocol.SeverityOrder, which is a sort order.
var dimensionOrdinal = map[protocol.RiskLevel]float64{
	protocol.RiskGood:     0,
	protocol.RiskWarning:  1,
	protocol.RiskBad:      2,
	protocol.RiskCritical: 3,
}

// AverageSeverity computes the mean severity of a rubric's dimensions.
// Neutral is not a legal score inside the fixed dimension sets; if one
// slips through it counts as 0 and a warning is logged. Unknown levels
// fail closed to 0 the same way rather than erroring into the render
// path.
func AverageSeverity(dimensions map[string]protocol.Dimension) float64 {
	if len(dimensions) == 0 {
		return 0
	}
	values := make([]float64, 0, len(dimensions))
	for key, dim := range dimensions {
		ord, ok := dimensionOrdinal[dim.Risk]
		if !ok {
			log.Warn().
				Str("dimension", key).
				Str("risk", string(dim.Risk)).
				Msg("risk level outside the dimension scale, counting as 0")
			ord = 0
		}
		values = append(values, ord)
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}

// averageBuckets is the coarse display bucketing for a dimension
// average. Deliberately non-linear: indexes 0 and 1 both read "good".
var averageBuckets = [4]protocol.RiskLevel{
	protocol.RiskGood, protocol.RiskGood, protocol.RiskWarning, protocol.RiskBad,
}

// BucketAverage maps a dimension average onto its display bucket.
// Rounds to nearest; anything rounding past the table clamps to the
// last entry instead of indexing out of range.
func BucketAverage(avg float64) protocol.RiskLevel {
	idx := int(math.Round(avg))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(averageBuckets) {
		idx = len(averageBuckets) - 1
	}
	return averageBuckets[idx]
}

// Category is a coarse bucket over the freeform protocol type string.
type Category string

const (
	CategoryAll            Category = "All"
	CategoryContextTools   Category = "Context & Tools"
	CategoryAgentToAgent   Category = "Agent ↔ Agent"
	CategoryAgentToUser    Category = "Agent ↔ User"
	CategoryPayments       Category = "Payments"
	CategoryCommerce       Category = "Commerce"
	CategoryInfrastructure Category = "Infrastructure"
)

// Categories is the full filter set in display order, All first.
var Categories = []Category{
	CategoryAll,
	CategoryContextTools,
	CategoryAgentToAgent,
	CategoryAgentToUser,
	CategoryPayments,
	CategoryCommerce,
	CategoryInfrastructure,
}

// ParseCategory resolves a raw filter value, falling back to All.
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return CategoryAll
}

// Categorize classifies a protocol by substring match against its
// freeform type string. Rules are checked in precedence order; the
// first match wins. A string matching nothing lands in Infrastructure,
// which is the designed default rather than a failure.
func Categorize(p protocol.Protocol) Category {
	t := p.Type
	switch {
	case strings.Contains(t, "Context"):
		return CategoryContextTools
	case strings.Contains(t, "Agent ↔ Agent"),
		strings.Contains(t, "Cross-trust"),
		strings.Contains(t, "Decentralized"),
		strings.Contains(t, "Lightweight"):
		return CategoryAgentToAgent
	case strings.Contains(t, "Agent ↔ User"), strings.Contains(t, "UI"):
		return CategoryAgentToUser
	case strings.Contains(t, "Payment"):
		return CategoryPayments
	case strings.Contains(t, "Commerce"):
		return CategoryCommerce
	}
	return CategoryInfrastructure
}

// FilterByCategory returns the protocols whose category matches cat.
// All passes everything through unchanged.
func FilterByCategory(protocols []protocol.Protocol, cat Category) []protocol.Protocol {
	if cat == CategoryAll {
		return protocols
	}
	out := make([]protocol.Protocol, 0, len(protocols))
	for _, p := range protocols {
		if Categorize(p) == cat {
			out = append(out, p)
		}
	}
	return out
}

// RiskCounts tallies overall risk across the collection for the summary
// badges. Levels with no occurrences are absent from the map, not zero.
func RiskCounts(protocols []protocol.Protocol) map[protocol.RiskLevel]int {
	counts := make(map[protocol.RiskLevel]int)
	for _, p := range protocols {
		counts[p.OverallRisk]++
	}
	return counts
}

// SortKey selects the dashboard sort order.
type SortKey string

const (
	SortByRisk      SortKey = "risk"
	SortByName      SortKey = "name"
	SortByArchetype SortKey = "archetype"
)

// ParseSortKey resolves a raw sort value, falling back to risk.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByName:
		return SortByName
	case SortByArchetype:
		return SortByArchetype
	}
	return SortByRisk
}

// severityOrdinal is the sort position of an overall risk rating,
// failing closed to the most severe position for unknown values.
func severityOrdinal(r protocol.RiskLevel) int {
	if ord, ok := protocol.SeverityOrder[r]; ok {
		return ord
	}
	log.Warn().Str("risk", string(r)).Msg("unrecognized risk level in sort, treating as most severe")
	return 0
}

// SortBy returns a new slice ordered by the given key. The sort is
// stable: ties keep their prior relative order.
func SortBy(protocols []protocol.Protocol, key SortKey) []protocol.Protocol {
	out := make([]protocol.Protocol, len(protocols))
	copy(out, protocols)
	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortByName:
			return out[i].Name < out[j].Name
		case SortByArchetype:
			return out[i].Archetype < out[j].Archetype
		default:
			return severityOrdinal(out[i].OverallRisk) < severityOrdinal(out[j].OverallRisk)
		}
	})
	return out
}
