package ui

import (
	"net/http"

	"github.com/sachben91/agent-protocol-risk/domain/core"
	"github.com/sachben91/agent-protocol-risk/domain/protocol"
	"github.com/sachben91/agent-protocol-risk/domain/scoring"
	"github.com/sachben91/agent-protocol-risk/domain/view"
)

// dashboardRow is one protocol row with everything the template needs
// precomputed.
type dashboardRow struct {
	Protocol      protocol.Protocol
	Expanded      bool
	KafkaDims     []dimensionView
	DangerousDims []dimensionView
}

// frameworkPanel is the collapsible explainer above the list.
type frameworkPanel struct {
	KafkaLabels     []dimensionView
	DangerousLabels []dimensionView
	Archetypes      []protocol.ArchetypeInfo
}

type dashboardData struct {
	Title         string
	Rows          []dashboardRow
	Total         int
	Badges        []riskBadge
	SortKeys      []scoring.SortKey
	CurrentSort   scoring.SortKey
	Categories    []scoring.Category
	CurrentFilter scoring.Category
	ShowFramework bool
	Framework     frameworkPanel
	LastUpdated   string
}

// handleDashboard renders the protocol list. Interactions arrive as
// query parameters (toggle, sort, filter, framework); each one is a
// state transition against the visitor's session followed by a
// redirect, so the rendered URL stays clean.
func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sessionID := a.sessionID(w, r)
	state := a.sessions.Get(sessionID)

	if next, acted := applyActions(state, r); acted {
		a.sessions.Put(sessionID, next)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	all, err := a.reader.LoadAll(r.Context())
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to load protocols")
		http.Error(w, "failed to load protocols", http.StatusInternalServerError)
		return
	}

	visible := state.VisibleList(all)
	rows := make([]dashboardRow, 0, len(visible))
	for _, p := range visible {
		rows = append(rows, dashboardRow{
			Protocol:      p,
			Expanded:      state.IsExpanded(p.Slug),
			KafkaDims:     kafkaDimensionViews(p.KafkaIndex),
			DangerousDims: dangerousDimensionViews(p.Dangerous),
		})
	}

	lastUpdated := ""
	if len(all) > 0 {
		lastUpdated = all[0].LastUpdated
	}

	a.renderTemplate(w, http.StatusOK, "dashboard.html", dashboardData{
		Title:         "AI Agent Protocol Risk Dashboard",
		Rows:          rows,
		Total:         len(all),
		Badges:        riskBadges(all),
		SortKeys:      []scoring.SortKey{scoring.SortByRisk, scoring.SortByName, scoring.SortByArchetype},
		CurrentSort:   state.SortKey,
		Categories:    scoring.Categories,
		CurrentFilter: state.CategoryFilter,
		ShowFramework: state.FrameworkPanelVisible,
		Framework: frameworkPanel{
			KafkaLabels:     kafkaDimensionViews(protocol.KafkaIndex{}),
			DangerousLabels: dangerousDimensionViews(protocol.DangerousProtocol{}),
			Archetypes: []protocol.ArchetypeInfo{
				protocol.Archetypes[protocol.ArchetypeWhitehead],
				protocol.Archetypes[protocol.ArchetypeBartleby],
				protocol.Archetypes[protocol.ArchetypeKafka],
			},
		},
		LastUpdated: lastUpdated,
	})
}

// applyActions folds any state transitions carried by the request into
// the session state. All transitions are total: an unknown value is
// absorbed by the parser fallbacks, never an error.
func applyActions(state view.State, r *http.Request) (view.State, bool) {
	q := r.URL.Query()
	acted := false

	if slug := q.Get("toggle"); slug != "" {
		state = state.ToggleExpand(core.Slug(slug))
		acted = true
	}
	if sortKey := q.Get("sort"); sortKey != "" {
		state = state.SetSortKey(scoring.ParseSortKey(sortKey))
		acted = true
	}
	if filter := q.Get("filter"); filter != "" {
		state = state.SetCategoryFilter(scoring.ParseCategory(filter))
		acted = true
	}
	if q.Get("framework") != "" {
		state = state.ToggleFrameworkPanel()
		acted = true
	}
	return state, acted
}

type notFoundData struct {
	Title string
	Slug  string
}

// handleNotFound renders the not-found page. An unknown slug is an
// expected outcome, so it gets a real page, never a raw error.
func (a *App) handleNotFound(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, http.StatusNotFound, "notfound.html", notFoundData{
		Title: "Not Found",
	})
}
