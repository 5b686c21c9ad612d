package ui

import (
	"html/template"
	"net/http"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/sachben91/agent-protocol-risk/domain/core"
)

type essayData struct {
	Title string
	Body  template.HTML
}

// handleEssay serves one static editorial essay, rendered from its
// markdown source on every request. The essays are trusted editorial
// content, not user input, which is why the rendered HTML goes out
// unescaped.
func (a *App) handleEssay(slug, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := a.essays.Essay(r.Context(), slug)
		if err != nil {
			if core.IsNotFoundError(err) {
				a.handleNotFound(w, r)
				return
			}
			a.logger.Error().Err(err).Str("essay", slug).Msg("failed to load essay")
			http.Error(w, "failed to load essay", http.StatusInternalServerError)
			return
		}

		p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
		renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
		body := markdown.ToHTML(raw, p, renderer)

		a.renderTemplate(w, http.StatusOK, "essay.html", essayData{
			Title: title,
			Body:  template.HTML(body),
		})
	}
}
