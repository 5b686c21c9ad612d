// Package view models the dashboard's interactive state as an explicit
// value with pure transition methods, so the expand/sort/filter
// behavior can be tested without a rendering environment. State is
// ephemeral per session and never persisted.
package view

import (
	"github.com/sachben91/agent-protocol-risk/domain/core"
	"github.com/sachben91/agent-protocol-risk/domain/protocol"
	"github.com/sachben91/agent-protocol-risk/domain/scoring"
)

// State is one session's dashboard state.
type State struct {
	ExpandedSlugs         map[core.Slug]bool `json:"expandedSlugs"`
	SortKey               scoring.SortKey    `json:"sortKey"`
	CategoryFilter        scoring.Category   `json:"categoryFilter"`
	FrameworkPanelVisible bool               `json:"frameworkPanelVisible"`
}

// NewState returns the initial state: nothing expanded, sorted by risk,
// all categories, framework panel hidden.
func NewState() State {
	return State{
		ExpandedSlugs:  make(map[core.Slug]bool),
		SortKey:        scoring.SortByRisk,
		CategoryFilter: scoring.CategoryAll,
	}
}

// clone copies the state so transitions never alias the expanded set.
func (s State) clone() State {
	expanded := make(map[core.Slug]bool, len(s.ExpandedSlugs))
	for slug := range s.ExpandedSlugs {
		expanded[slug] = true
	}
	s.ExpandedSlugs = expanded
	return s
}

// ToggleExpand flips one slug's membership in the expanded set.
// Applying it twice restores the original membership. Expansions are
// independent per slug with no limit on how many are open at once.
func (s State) ToggleExpand(slug core.Slug) State {
	next := s.clone()
	if next.ExpandedSlugs[slug] {
		delete(next.ExpandedSlugs, slug)
	} else {
		next.ExpandedSlugs[slug] = true
	}
	return next
}

// IsExpanded reports whether a slug's row is expanded.
func (s State) IsExpanded(slug core.Slug) bool {
	return s.ExpandedSlugs[slug]
}

// SetSortKey replaces the sort key.
func (s State) SetSortKey(key scoring.SortKey) State {
	next := s.clone()
	next.SortKey = key
	return next
}

// SetCategoryFilter replaces the category filter.
func (s State) SetCategoryFilter(cat scoring.Category) State {
	next := s.clone()
	next.CategoryFilter = cat
	return next
}

// ToggleFrameworkPanel flips the framework explainer's visibility.
func (s State) ToggleFrameworkPanel() State {
	next := s.clone()
	next.FrameworkPanelVisible = !next.FrameworkPanelVisible
	return next
}

// VisibleList derives the rendered subset and order from the full
// collection. Recomputed in full on every call; at this dataset size
// incremental maintenance would be pure overhead.
func (s State) VisibleList(all []protocol.Protocol) []protocol.Protocol {
	return scoring.SortBy(scoring.FilterByCategory(all, s.CategoryFilter), s.SortKey)
}
