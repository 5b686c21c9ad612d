package protocol

import (
	"github.com/sachben91/agent-protocol-risk/domain/core"
)

// rawDimensions mirrors the JSON nesting of a rubric so a missing key
// can be told apart from a present-but-empty one.
type rawDimension struct {
	dim   *Dimension
	field string
}

// Validate checks a parsed record against the full protocol shape.
// The first violation found is returned as a *core.SchemaError naming
// the offending slug and field; a nil return means the record is safe
// to hand to the view layer.
func Validate(p *Protocol) error {
	slug := p.Slug.String()

	required := []struct {
		field string
		value string
	}{
		{"slug", slug},
		{"name", p.Name},
		{"fullName", p.FullName},
		{"by", p.By},
		{"type", p.Type},
		{"maturity", p.Maturity},
		{"lastUpdated", p.LastUpdated},
		{"summary", p.Summary},
	}
	for _, r := range required {
		if r.value == "" {
			return core.NewSchemaError(slug, r.field, "required field is missing or empty")
		}
	}

	if _, err := core.ParseSlug(slug); err != nil {
		return core.NewSchemaError(slug, "slug", "%v", err)
	}
	if !p.Archetype.Valid() {
		return core.NewSchemaError(slug, "archetype", "unrecognized archetype %q", p.Archetype)
	}
	if !p.Stage.Valid() {
		return core.NewSchemaError(slug, "stage", "unrecognized stage %q", p.Stage)
	}
	if !p.OverallRisk.Valid() {
		return core.NewSchemaError(slug, "overallRisk", "unrecognized risk level %q", p.OverallRisk)
	}

	for _, d := range kafkaFields(p) {
		if err := validateDimension(slug, d); err != nil {
			return err
		}
	}
	for _, d := range dangerousFields(p) {
		if err := validateDimension(slug, d); err != nil {
			return err
		}
	}
	return nil
}

func kafkaFields(p *Protocol) []rawDimension {
	k := &p.KafkaIndex
	return []rawDimension{
		{&k.FeedbackLoop, "kafkaIndex.feedbackLoop"},
		{&k.EdgeCases, "kafkaIndex.edgeCases"},
		{&k.Ambiguity, "kafkaIndex.ambiguity"},
		{&k.Redundancy, "kafkaIndex.redundancy"},
		{&k.Nesting, "kafkaIndex.nesting"},
		{&k.ExitCost, "kafkaIndex.exitCost"},
	}
}

func dangerousFields(p *Protocol) []rawDimension {
	d := &p.Dangerous
	return []rawDimension{
		{&d.IdentityPenetration, "dangerousProtocol.identityPenetration"},
		{&d.AgencyPreservation, "dangerousProtocol.agencyPreservation"},
		{&d.ControlInvisibility, "dangerousProtocol.controlInvisibility"},
		{&d.CrisisMindset, "dangerousProtocol.crisisMindset"},
	}
}

func validateDimension(slug string, d rawDimension) error {
	// A zero-valued dimension means the key was absent from the record.
	if d.dim.Risk == "" && d.dim.Note == "" {
		return core.NewSchemaError(slug, d.field, "required dimension is missing")
	}
	if !d.dim.Risk.Valid() {
		return core.NewSchemaError(slug, d.field+".risk", "unrecognized risk level %q", d.dim.Risk)
	}
	if d.dim.Note == "" {
		return core.NewSchemaError(slug, d.field+".note", "required field is missing or empty")
	}
	return nil
}
