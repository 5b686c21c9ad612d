package protocol

// Reference tables for rendering. Initialized once, never mutated.

// RiskInfo carries the display attributes of one risk level.
type RiskInfo struct {
	Label  string
	Color  string
	Bg     string
	Border string
}

// Risk maps each level to its display attributes.
var Risk = map[RiskLevel]RiskInfo{
	RiskGood:     {Label: "Low", Color: "#16a34a", Bg: "#f0fdf4", Border: "#bbf7d0"},
	RiskWarning:  {Label: "Medium", Color: "#ca8a04", Bg: "#fefce8", Border: "#fef08a"},
	RiskBad:      {Label: "High", Color: "#ea580c", Bg: "#fff7ed", Border: "#fed7aa"},
	RiskCritical: {Label: "Critical", Color: "#dc2626", Bg: "#fef2f2", Border: "#fecaca"},
	RiskNeutral:  {Label: "—", Color: "#6b7280", Bg: "#f9fafb", Border: "#e5e7eb"},
}

// RiskDisplay resolves a level's display attributes, falling back to
// neutral for anything outside the closed set so rendering never panics.
func RiskDisplay(r RiskLevel) RiskInfo {
	if info, ok := Risk[r]; ok {
		return info
	}
	return Risk[RiskNeutral]
}

// ArchetypeInfo carries the display attributes of one archetype.
type ArchetypeInfo struct {
	Label string
	Quote string
	Desc  string
	Color string
	Icon  string
}

// Archetypes maps each archetype to its display attributes.
var Archetypes = map[Archetype]ArchetypeInfo{
	ArchetypeWhitehead: {
		Label: "Whitehead",
		Quote: "Civilization advances by extending the number of important operations which we can perform without thinking about them.",
		Desc:  "Balanced power between protocol and participant",
		Color: "#16a34a",
		Icon:  "◎",
	},
	ArchetypeBartleby: {
		Label: "Bartleby",
		Quote: "I would prefer not to.",
		Desc:  "Participant holds too much power; high agency limits ability to manage complexity",
		Color: "#ca8a04",
		Icon:  "◉",
	},
	ArchetypeKafka: {
		Label: "Kafka",
		Quote: "I can't find my way round in this darkness.",
		Desc:  "Protocol holds too much power; participant trapped in maze they can't understand or escape",
		Color: "#dc2626",
		Icon:  "◈",
	},
}

// StageInfo carries the display attributes of one adoption stage.
type StageInfo struct {
	Label string
	Desc  string
	Num   int
}

// Stages maps each stage to its label, description, and ordinal.
var Stages = map[Stage]StageInfo{
	StageExplicit: {Label: "Explicit Rules", Desc: "Participants know the protocol and willingly enter", Num: 1},
	StageSocial:   {Label: "Social Expectation", Desc: "Widely understood but not written down; peer-enforced", Num: 2},
	StageIdentity: {Label: "Identity Layer", Desc: "Internalized; participants believe compliance is self-expression", Num: 3},
}

// KafkaLabel describes one Kafka Index dimension for display.
type KafkaLabel struct {
	Label     string
	KafkaItem string
}

// KafkaLabels maps each Kafka Index key to its label and the rubric
// item it scores.
var KafkaLabels = map[string]KafkaLabel{
	"feedbackLoop": {Label: "Feedback Loop", KafkaItem: "No (or hidden) feedback loop"},
	"edgeCases":    {Label: "Edge Case Sprawl", KafkaItem: "Too many edge cases addressed at once"},
	"ambiguity":    {Label: "Outcome Ambiguity", KafkaItem: "Success outcomes randomized or ambiguously defined"},
	"redundancy":   {Label: "Protocol Redundancy", KafkaItem: "Multiple protocols solving the same problem"},
	"nesting":      {Label: "Recursive Nesting", KafkaItem: "Recursive, nested protocols"},
	"exitCost":     {Label: "Exit Cost", KafkaItem: "No market or alternatives exist"},
}

// DangerousLabel describes one Dangerous Protocols dimension for display.
type DangerousLabel struct {
	Label string
	Desc  string
}

// DangerousLabels maps each Dangerous Protocols key to its label and
// the question it answers.
var DangerousLabels = map[string]DangerousLabel{
	"identityPenetration": {Label: "Identity Penetration", Desc: "How deeply has the protocol entered participants' identity layer?"},
	"agencyPreservation":  {Label: "Agency Preservation", Desc: "How much decision-making power does the participant retain?"},
	"controlInvisibility": {Label: "Control Invisibility", Desc: "How invisible is the protocol's control over participants?"},
	"crisisMindset":       {Label: "Crisis Mindset", Desc: "Is adoption driven by urgency/fear rather than genuine utility?"},
}
