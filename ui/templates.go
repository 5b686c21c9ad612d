package ui

import (
	"bytes"
	"net/http"
)

// renderTemplate executes a template with the given data, buffering
// first so a rendering error never leaves a half-written page behind.
func (a *App) renderTemplate(w http.ResponseWriter, status int, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		a.logger.Error().Err(err).Str("template", templateName).Msg("template rendering failed")
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		a.logger.Error().Err(err).Msg("error writing template response")
	}
}
