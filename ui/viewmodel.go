package ui

import (
	"github.com/sachben91/agent-protocol-risk/domain/protocol"
	"github.com/sachben91/agent-protocol-risk/domain/scoring"
)

// dimensionView pairs one scored dimension with its display metadata.
type dimensionView struct {
	Key   string
	Label string
	Desc  string
	Dim   protocol.Dimension
}

// kafkaDimensionViews returns the six Kafka Index scores in canonical
// order with their labels.
func kafkaDimensionViews(k protocol.KafkaIndex) []dimensionView {
	dims := k.Dimensions()
	out := make([]dimensionView, 0, len(protocol.KafkaDimensionKeys))
	for _, key := range protocol.KafkaDimensionKeys {
		meta := protocol.KafkaLabels[key]
		out = append(out, dimensionView{Key: key, Label: meta.Label, Desc: meta.KafkaItem, Dim: dims[key]})
	}
	return out
}

// dangerousDimensionViews returns the four Dangerous Protocols scores
// in canonical order with their labels.
func dangerousDimensionViews(d protocol.DangerousProtocol) []dimensionView {
	dims := d.Dimensions()
	out := make([]dimensionView, 0, len(protocol.DangerousDimensionKeys))
	for _, key := range protocol.DangerousDimensionKeys {
		meta := protocol.DangerousLabels[key]
		out = append(out, dimensionView{Key: key, Label: meta.Label, Desc: meta.Desc, Dim: dims[key]})
	}
	return out
}

// riskBadge is one summary count chip on the dashboard header.
type riskBadge struct {
	Level protocol.RiskLevel
	Info  protocol.RiskInfo
	Count int
}

// riskBadges tallies overall risk in severity order, dropping levels
// with no occurrences rather than showing zeros.
func riskBadges(protocols []protocol.Protocol) []riskBadge {
	counts := scoring.RiskCounts(protocols)
	order := []protocol.RiskLevel{
		protocol.RiskCritical, protocol.RiskBad, protocol.RiskWarning, protocol.RiskGood,
	}
	out := make([]riskBadge, 0, len(order))
	for _, level := range order {
		if n := counts[level]; n > 0 {
			out = append(out, riskBadge{Level: level, Info: protocol.RiskDisplay(level), Count: n})
		}
	}
	return out
}

// scoreView is a bucketed rubric average for the detail page.
type scoreView struct {
	Average float64
	Bucket  protocol.RiskLevel
	Info    protocol.RiskInfo
}

func newScoreView(dims map[string]protocol.Dimension) scoreView {
	avg := scoring.AverageSeverity(dims)
	bucket := scoring.BucketAverage(avg)
	return scoreView{Average: avg, Bucket: bucket, Info: protocol.RiskDisplay(bucket)}
}
