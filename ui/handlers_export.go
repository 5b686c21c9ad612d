package ui

import (
	"net/http"

	"github.com/sachben91/agent-protocol-risk/adapters/excel"
)

// handleExport streams the scored collection as a spreadsheet in the
// canonical load order.
func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	protocols, err := a.reader.LoadAll(r.Context())
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to load protocols for export")
		http.Error(w, "failed to load protocols", http.StatusInternalServerError)
		return
	}

	workbook, err := excel.BuildWorkbook(protocols)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to build workbook")
		http.Error(w, "failed to build workbook", http.StatusInternalServerError)
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="agent-protocol-risk.xlsx"`)
	if err := workbook.Write(w); err != nil {
		a.logger.Error().Err(err).Msg("error writing workbook response")
	}
}
