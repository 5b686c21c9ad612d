package protocol

import (
	"errors"
	"strings"
	"testing"

	"github.com/sachben91/agent-protocol-risk/domain/core"
)

// TestValidateAccepts tests that a complete record passes validation
func TestValidateAccepts(t *testing.T) {
	p := validRecord("mcp")
	if err := Validate(&p); err != nil {
		t.Fatalf("Expected valid record to pass, got: %v", err)
	}
}

// TestValidateRequiredFields tests that each missing envelope field is caught
func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Protocol)
	}{
		{"slug", func(p *Protocol) { p.Slug = "" }},
		{"name", func(p *Protocol) { p.Name = "" }},
		{"fullName", func(p *Protocol) { p.FullName = "" }},
		{"by", func(p *Protocol) { p.By = "" }},
		{"type", func(p *Protocol) { p.Type = "" }},
		{"maturity", func(p *Protocol) { p.Maturity = "" }},
		{"lastUpdated", func(p *Protocol) { p.LastUpdated = "" }},
		{"summary", func(p *Protocol) { p.Summary = "" }},
	}

	for _, test := range tests {
		p := validRecord("mcp")
		test.mutate(&p)
		err := Validate(&p)
		if err == nil {
			t.Errorf("Expected error for missing %s, got none", test.field)
			continue
		}
		var schemaErr *core.SchemaError
		if !errors.As(err, &schemaErr) {
			t.Errorf("Expected *core.SchemaError for %s, got %T", test.field, err)
			continue
		}
		if schemaErr.Field != test.field {
			t.Errorf("Expected field %q in error, got %q", test.field, schemaErr.Field)
		}
	}
}

// TestValidateEnums tests that invalid enum members are rejected
func TestValidateEnums(t *testing.T) {
	p := validRecord("mcp")
	p.Archetype = "melville"
	if err := Validate(&p); err == nil || !strings.Contains(err.Error(), "archetype") {
		t.Errorf("Expected archetype error, got: %v", err)
	}

	p = validRecord("mcp")
	p.Stage = "implicit"
	if err := Validate(&p); err == nil || !strings.Contains(err.Error(), "stage") {
		t.Errorf("Expected stage error, got: %v", err)
	}

	p = validRecord("mcp")
	p.OverallRisk = "severe"
	if err := Validate(&p); err == nil || !strings.Contains(err.Error(), "overallRisk") {
		t.Errorf("Expected overallRisk error, got: %v", err)
	}
}

// TestValidateBadSlug tests that a non-URL-safe slug is rejected
func TestValidateBadSlug(t *testing.T) {
	p := validRecord("mcp")
	p.Slug = "Not A Slug"
	err := Validate(&p)
	if err == nil {
		t.Fatal("Expected error for malformed slug")
	}
	if !core.IsSchemaError(err) {
		t.Errorf("Expected schema error, got: %v", err)
	}
}

// TestValidateMissingDimension tests that an absent rubric dimension is caught
func TestValidateMissingDimension(t *testing.T) {
	p := validRecord("mcp")
	p.KafkaIndex.ExitCost = Dimension{}
	err := Validate(&p)
	if err == nil {
		t.Fatal("Expected error for missing dimension")
	}
	var schemaErr *core.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Expected *core.SchemaError, got %T", err)
	}
	if schemaErr.Field != "kafkaIndex.exitCost" {
		t.Errorf("Expected field kafkaIndex.exitCost, got %q", schemaErr.Field)
	}

	p = validRecord("mcp")
	p.Dangerous.CrisisMindset = Dimension{}
	err = Validate(&p)
	if err == nil {
		t.Fatal("Expected error for missing dangerous dimension")
	}
	if !strings.Contains(err.Error(), "dangerousProtocol.crisisMindset") {
		t.Errorf("Expected crisisMindset in error, got: %v", err)
	}
}

// TestValidateDimensionRiskAndNote tests per-dimension checks
func TestValidateDimensionRiskAndNote(t *testing.T) {
	p := validRecord("mcp")
	p.KafkaIndex.Nesting.Risk = "low"
	if err := Validate(&p); err == nil || !strings.Contains(err.Error(), "kafkaIndex.nesting.risk") {
		t.Errorf("Expected nesting.risk error, got: %v", err)
	}

	p = validRecord("mcp")
	p.KafkaIndex.Nesting.Note = ""
	if err := Validate(&p); err == nil || !strings.Contains(err.Error(), "kafkaIndex.nesting.note") {
		t.Errorf("Expected nesting.note error, got: %v", err)
	}
}
