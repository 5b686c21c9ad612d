package excel

import (
	"testing"

	"github.com/sachben91/agent-protocol-risk/domain/core"
	"github.com/sachben91/agent-protocol-risk/domain/protocol"
)

func dim(risk protocol.RiskLevel) protocol.Dimension {
	return protocol.Dimension{Risk: risk, Note: "scored"}
}

func testRecord(slug, name string, risk protocol.RiskLevel) protocol.Protocol {
	return protocol.Protocol{
		Slug:        core.Slug(slug),
		Name:        name,
		FullName:    name + " Protocol",
		By:          "Example Org",
		Type:        "Commerce",
		Archetype:   protocol.ArchetypeKafka,
		Stage:       protocol.StageExplicit,
		Maturity:    "Production",
		OverallRisk: risk,
		LastUpdated: "2026-02-15",
		Summary:     "A scored protocol record used in tests.",
		KafkaIndex: protocol.KafkaIndex{
			FeedbackLoop: dim(protocol.RiskWarning),
			EdgeCases:    dim(protocol.RiskBad),
			Ambiguity:    dim(protocol.RiskWarning),
			Redundancy:   dim(protocol.RiskWarning),
			Nesting:      dim(protocol.RiskBad),
			ExitCost:     dim(protocol.RiskCritical),
		},
		Dangerous: protocol.DangerousProtocol{
			IdentityPenetration: dim(protocol.RiskCritical),
			AgencyPreservation:  dim(protocol.RiskBad),
			ControlInvisibility: dim(protocol.RiskCritical),
			CrisisMindset:       dim(protocol.RiskCritical),
		},
	}
}

// TestBuildWorkbook tests sheet layout: headers plus one row per record
func TestBuildWorkbook(t *testing.T) {
	f, err := BuildWorkbook([]protocol.Protocol{
		testRecord("ucp", "UCP", protocol.RiskCritical),
		testRecord("x402", "x402", protocol.RiskBad),
	})
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(matrixSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(rows))
	}

	wantCols := 13 + len(protocol.KafkaDimensionKeys) + len(protocol.DangerousDimensionKeys)
	if len(rows[0]) != wantCols {
		t.Errorf("Expected %d header columns, got %d", wantCols, len(rows[0]))
	}
	if rows[0][0] != "Slug" || rows[0][13] != "K: Feedback Loop" {
		t.Errorf("Unexpected header layout: %v", rows[0])
	}

	if rows[1][0] != "ucp" {
		t.Errorf("Expected first row slug ucp, got %q", rows[1][0])
	}
	if rows[1][5] != "Commerce" {
		t.Errorf("Expected derived category Commerce, got %q", rows[1][5])
	}
	if rows[1][9] != "Critical" {
		t.Errorf("Expected overall risk label Critical, got %q", rows[1][9])
	}
	// Exit cost is the last Kafka dimension column.
	if rows[1][12+len(protocol.KafkaDimensionKeys)] != "Critical" {
		t.Errorf("Expected exit cost label Critical, got %q", rows[1][12+len(protocol.KafkaDimensionKeys)])
	}
}

// TestBuildWorkbookEmpty tests that an empty collection still yields headers
func TestBuildWorkbookEmpty(t *testing.T) {
	f, err := BuildWorkbook(nil)
	if err != nil {
		t.Fatalf("BuildWorkbook failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(matrixSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected header row only, got %d rows", len(rows))
	}
}
