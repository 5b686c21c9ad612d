package protocol

import (
	"github.com/sachben91/agent-protocol-risk/domain/core"
)

// RiskLevel is the closed set of editorial severity ratings.
type RiskLevel string

const (
	RiskGood     RiskLevel = "good"
	RiskWarning  RiskLevel = "warning"
	RiskBad      RiskLevel = "bad"
	RiskCritical RiskLevel = "critical"
	RiskNeutral  RiskLevel = "neutral"
)

// SeverityOrder maps each risk level to its sort ordinal. Lower means
// more severe and sorts first: critical < bad < warning < good < neutral.
var SeverityOrder = map[RiskLevel]int{
	RiskCritical: 0,
	RiskBad:      1,
	RiskWarning:  2,
	RiskGood:     3,
	RiskNeutral:  4,
}

// Valid reports whether the value is a member of the closed enum.
func (r RiskLevel) Valid() bool {
	_, ok := SeverityOrder[r]
	return ok
}

// Archetype is the power-balance classification of a protocol
// relationship, after Asparouhova.
type Archetype string

const (
	ArchetypeWhitehead Archetype = "whitehead"
	ArchetypeBartleby  Archetype = "bartleby"
	ArchetypeKafka     Archetype = "kafka"
)

func (a Archetype) Valid() bool {
	switch a {
	case ArchetypeWhitehead, ArchetypeBartleby, ArchetypeKafka:
		return true
	}
	return false
}

// Stage is the adoption-maturity axis. Stages are traversed in order by
// editorial convention; the type does not enforce monotonicity.
type Stage string

const (
	StageExplicit Stage = "explicit"
	StageSocial   Stage = "social"
	StageIdentity Stage = "identity"
)

func (s Stage) Valid() bool {
	switch s {
	case StageExplicit, StageSocial, StageIdentity:
		return true
	}
	return false
}

// Source is a citation backing a dimension score.
type Source struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Dimension is the atomic scored judgment unit.
type Dimension struct {
	Risk    RiskLevel `json:"risk"`
	Note    string    `json:"note"`
	Sources []Source  `json:"sources,omitempty"`
}

// KafkaIndex is the six-dimension design-complexity rubric. A closed
// struct, not a map: a record always carries exactly these six scores.
type KafkaIndex struct {
	FeedbackLoop Dimension `json:"feedbackLoop"`
	EdgeCases    Dimension `json:"edgeCases"`
	Ambiguity    Dimension `json:"ambiguity"`
	Redundancy   Dimension `json:"redundancy"`
	Nesting      Dimension `json:"nesting"`
	ExitCost     Dimension `json:"exitCost"`
}

// Dimensions returns the scores keyed by their canonical field names,
// in declaration order.
func (k KafkaIndex) Dimensions() map[string]Dimension {
	return map[string]Dimension{
		"feedbackLoop": k.FeedbackLoop,
		"edgeCases":    k.EdgeCases,
		"ambiguity":    k.Ambiguity,
		"redundancy":   k.Redundancy,
		"nesting":      k.Nesting,
		"exitCost":     k.ExitCost,
	}
}

// KafkaDimensionKeys is the canonical presentation order of the six keys.
var KafkaDimensionKeys = []string{
	"feedbackLoop", "edgeCases", "ambiguity", "redundancy", "nesting", "exitCost",
}

// DangerousProtocol is the four-dimension social-control rubric.
type DangerousProtocol struct {
	IdentityPenetration Dimension `json:"identityPenetration"`
	AgencyPreservation  Dimension `json:"agencyPreservation"`
	ControlInvisibility Dimension `json:"controlInvisibility"`
	CrisisMindset       Dimension `json:"crisisMindset"`
}

// Dimensions returns the scores keyed by their canonical field names.
func (d DangerousProtocol) Dimensions() map[string]Dimension {
	return map[string]Dimension{
		"identityPenetration": d.IdentityPenetration,
		"agencyPreservation":  d.AgencyPreservation,
		"controlInvisibility": d.ControlInvisibility,
		"crisisMindset":       d.CrisisMindset,
	}
}

// DangerousDimensionKeys is the canonical presentation order of the four keys.
var DangerousDimensionKeys = []string{
	"identityPenetration", "agencyPreservation", "controlInvisibility", "crisisMindset",
}

// Protocol is the aggregate root: one scored agent protocol.
//
// OverallRisk is an editorial judgment assigned by the record author.
// It is never computed from the per-dimension scores and never
// cross-validated against them; the derived dimension averages shown in
// the UI are a separate display value.
type Protocol struct {
	Slug        core.Slug         `json:"slug"`
	Name        string            `json:"name"`
	FullName    string            `json:"fullName"`
	By          string            `json:"by"`
	Type        string            `json:"type"`
	Archetype   Archetype         `json:"archetype"`
	Stage       Stage             `json:"stage"`
	Maturity    string            `json:"maturity"`
	OverallRisk RiskLevel         `json:"overallRisk"`
	LastUpdated string            `json:"lastUpdated"`
	Summary     string            `json:"summary"`
	Website     string            `json:"website,omitempty"`
	Spec        string            `json:"spec,omitempty"`
	KafkaIndex  KafkaIndex        `json:"kafkaIndex"`
	Dangerous   DangerousProtocol `json:"dangerousProtocol"`
}
