package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachben91/agent-protocol-risk/domain/core"
	"github.com/sachben91/agent-protocol-risk/domain/protocol"
)

// fakeReader serves a fixed collection from memory.
type fakeReader struct {
	records []protocol.Protocol
}

func (f *fakeReader) LoadAll(_ context.Context) ([]protocol.Protocol, error) {
	out := make([]protocol.Protocol, len(f.records))
	copy(out, f.records)
	protocol.SortCanonical(out)
	return out, nil
}

func (f *fakeReader) LoadBySlug(_ context.Context, slug core.Slug) (*protocol.Protocol, error) {
	for _, p := range f.records {
		if p.Slug == slug {
			record := p
			return &record, nil
		}
	}
	return nil, core.NewNotFoundError(slug)
}

func dim(risk protocol.RiskLevel) protocol.Dimension {
	return protocol.Dimension{Risk: risk, Note: "scored"}
}

func testRecord(slug, name, typ string, risk protocol.RiskLevel) protocol.Protocol {
	return protocol.Protocol{
		Slug:        core.Slug(slug),
		Name:        name,
		FullName:    name + " Protocol",
		By:          "Example Org",
		Type:        typ,
		Archetype:   protocol.ArchetypeWhitehead,
		Stage:       protocol.StageExplicit,
		Maturity:    "Production",
		OverallRisk: risk,
		LastUpdated: "2026-02-15",
		Summary:     "A scored protocol record used in tests.",
		KafkaIndex: protocol.KafkaIndex{
			FeedbackLoop: dim(protocol.RiskGood),
			EdgeCases:    dim(protocol.RiskWarning),
			Ambiguity:    dim(protocol.RiskGood),
			Redundancy:   dim(protocol.RiskGood),
			Nesting:      dim(protocol.RiskGood),
			ExitCost:     dim(protocol.RiskWarning),
		},
		Dangerous: protocol.DangerousProtocol{
			IdentityPenetration: dim(protocol.RiskGood),
			AgencyPreservation:  dim(protocol.RiskGood),
			ControlInvisibility: dim(protocol.RiskGood),
			CrisisMindset:       dim(protocol.RiskGood),
		},
	}
}

func testServer(records ...protocol.Protocol) *Server {
	return NewServer(Config{
		Port:    "0",
		GinMode: gin.TestMode,
		Reader:  &fakeReader{records: records},
	})
}

func get(t *testing.T, s *Server, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	body := map[string]json.RawMessage{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

// TestHealth tests the liveness endpoint
func TestHealth(t *testing.T) {
	rec, body := get(t, testServer(), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"ok"`, string(body["status"]))
}

// TestListProtocols tests the collection endpoint in canonical order
func TestListProtocols(t *testing.T) {
	s := testServer(
		testRecord("mcp", "MCP", "Context & Tools", protocol.RiskGood),
		testRecord("ucp", "UCP", "Commerce", protocol.RiskCritical),
	)

	rec, body := get(t, s, "/api/protocols")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "2", string(body["count"]))

	var records []protocol.Protocol
	require.NoError(t, json.Unmarshal(body["protocols"], &records))
	require.Len(t, records, 2)
	assert.Equal(t, core.Slug("ucp"), records[0].Slug)
	assert.Equal(t, core.Slug("mcp"), records[1].Slug)
}

// TestListProtocolsFiltered tests category and sort query parameters
func TestListProtocolsFiltered(t *testing.T) {
	s := testServer(
		testRecord("mcp", "MCP", "Context & Tools", protocol.RiskGood),
		testRecord("ucp", "UCP", "Commerce", protocol.RiskCritical),
		testRecord("a2a", "A2A", "Agent ↔ Agent", protocol.RiskWarning),
	)

	rec, body := get(t, s, "/api/protocols?category=Commerce")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "1", string(body["count"]))

	rec, body = get(t, s, "/api/protocols?sort=name")
	require.Equal(t, http.StatusOK, rec.Code)
	var records []protocol.Protocol
	require.NoError(t, json.Unmarshal(body["protocols"], &records))
	require.Len(t, records, 3)
	assert.Equal(t, "A2A", records[0].Name)
	assert.Equal(t, "UCP", records[2].Name)
}

// TestGetProtocol tests the per-slug endpoint with derived scores
func TestGetProtocol(t *testing.T) {
	s := testServer(testRecord("mcp", "MCP", "Context & Tools", protocol.RiskGood))

	rec, body := get(t, s, "/api/protocols/mcp")
	require.Equal(t, http.StatusOK, rec.Code)

	var p protocol.Protocol
	require.NoError(t, json.Unmarshal(body["protocol"], &p))
	assert.Equal(t, "MCP", p.Name)

	var derived struct {
		Category     string  `json:"category"`
		KafkaAverage float64 `json:"kafkaAverage"`
		KafkaBucket  string  `json:"kafkaBucket"`
	}
	require.NoError(t, json.Unmarshal(body["derived"], &derived))
	assert.Equal(t, "Context & Tools", derived.Category)
	// Two warnings among six dimensions.
	assert.InDelta(t, 2.0/6.0, derived.KafkaAverage, 1e-9)
	assert.Equal(t, "good", derived.KafkaBucket)
}

// TestGetProtocolMiss tests the 404 shape for an unknown slug
func TestGetProtocolMiss(t *testing.T) {
	s := testServer(testRecord("mcp", "MCP", "Context & Tools", protocol.RiskGood))

	rec, body := get(t, s, "/api/protocols/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `"protocol not found"`, string(body["error"]))
}

// TestSummary tests the risk tally endpoint
func TestSummary(t *testing.T) {
	s := testServer(
		testRecord("mcp", "MCP", "Context & Tools", protocol.RiskGood),
		testRecord("acp", "ACP", "Agent ↔ Agent", protocol.RiskGood),
		testRecord("ucp", "UCP", "Commerce", protocol.RiskCritical),
	)

	rec, body := get(t, s, "/api/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "3", string(body["count"]))

	var counts map[protocol.RiskLevel]int
	require.NoError(t, json.Unmarshal(body["riskCounts"], &counts))
	assert.Equal(t, 2, counts[protocol.RiskGood])
	assert.Equal(t, 1, counts[protocol.RiskCritical])
	_, present := counts[protocol.RiskWarning]
	assert.False(t, present, "zero levels must be omitted")
}
