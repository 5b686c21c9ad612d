package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sachben91/agent-protocol-risk/domain/core"
	"github.com/sachben91/agent-protocol-risk/domain/protocol"
)

// stageStep is one cell of the adoption-stage strip.
type stageStep struct {
	Stage  protocol.Stage
	Info   protocol.StageInfo
	Active bool
}

type protocolDetailData struct {
	Title          string
	Protocol       protocol.Protocol
	Archetype      protocol.ArchetypeInfo
	Stage          protocol.StageInfo
	KafkaScore     scoreView
	DangerousScore scoreView
	KafkaDims      []dimensionView
	DangerousDims  []dimensionView
	Stages         []stageStep
}

// handleProtocolDetail renders the full analysis page for one slug.
func (a *App) handleProtocolDetail(w http.ResponseWriter, r *http.Request) {
	slug := core.Slug(chi.URLParam(r, "slug"))

	p, err := a.reader.LoadBySlug(r.Context(), slug)
	if err != nil {
		if core.IsNotFoundError(err) {
			a.renderTemplate(w, http.StatusNotFound, "notfound.html", notFoundData{
				Title: "Not Found",
				Slug:  slug.String(),
			})
			return
		}
		a.logger.Error().Err(err).Str("slug", slug.String()).Msg("failed to load protocol")
		http.Error(w, "failed to load protocol", http.StatusInternalServerError)
		return
	}

	stages := make([]stageStep, 0, len(protocol.Stages))
	for _, s := range []protocol.Stage{protocol.StageExplicit, protocol.StageSocial, protocol.StageIdentity} {
		stages = append(stages, stageStep{Stage: s, Info: protocol.Stages[s], Active: s == p.Stage})
	}

	a.renderTemplate(w, http.StatusOK, "protocol.html", protocolDetailData{
		Title:          p.Name + " — " + p.FullName,
		Protocol:       *p,
		Archetype:      protocol.Archetypes[p.Archetype],
		Stage:          protocol.Stages[p.Stage],
		KafkaScore:     newScoreView(p.KafkaIndex.Dimensions()),
		DangerousScore: newScoreView(p.Dangerous.Dimensions()),
		KafkaDims:      kafkaDimensionViews(p.KafkaIndex),
		DangerousDims:  dangerousDimensionViews(p.Dangerous),
		Stages:         stages,
	})
}
