// Package excel renders the scored collection as a spreadsheet so the
// editorial team can review or annotate the matrix outside the site.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sachben91/agent-protocol-risk/domain/protocol"
	"github.com/sachben91/agent-protocol-risk/domain/scoring"
)

const matrixSheet = "Risk Matrix"

// BuildWorkbook lays the full collection out as one row per protocol
// with a column per rubric dimension. The caller owns the returned
// file and is responsible for closing it.
func BuildWorkbook(protocols []protocol.Protocol) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), matrixSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := []string{
		"Slug", "Protocol", "Full Name", "By", "Type", "Category",
		"Archetype", "Stage", "Maturity", "Overall Risk",
		"Kafka Avg", "Dangerous Avg", "Last Updated",
	}
	for _, key := range protocol.KafkaDimensionKeys {
		headers = append(headers, "K: "+protocol.KafkaLabels[key].Label)
	}
	for _, key := range protocol.DangerousDimensionKeys {
		headers = append(headers, "D: "+protocol.DangerousLabels[key].Label)
	}
	if err := writeRow(f, 1, headers); err != nil {
		return nil, err
	}

	for i, p := range protocols {
		kafkaAvg := scoring.AverageSeverity(p.KafkaIndex.Dimensions())
		dangerAvg := scoring.AverageSeverity(p.Dangerous.Dimensions())

		row := []string{
			p.Slug.String(),
			p.Name,
			p.FullName,
			p.By,
			p.Type,
			string(scoring.Categorize(p)),
			protocol.Archetypes[p.Archetype].Label,
			protocol.Stages[p.Stage].Label,
			p.Maturity,
			protocol.RiskDisplay(p.OverallRisk).Label,
			fmt.Sprintf("%.2f (%s)", kafkaAvg, protocol.RiskDisplay(scoring.BucketAverage(kafkaAvg)).Label),
			fmt.Sprintf("%.2f (%s)", dangerAvg, protocol.RiskDisplay(scoring.BucketAverage(dangerAvg)).Label),
			p.LastUpdated,
		}
		kafka := p.KafkaIndex.Dimensions()
		for _, key := range protocol.KafkaDimensionKeys {
			row = append(row, protocol.RiskDisplay(kafka[key].Risk).Label)
		}
		dangerous := p.Dangerous.Dimensions()
		for _, key := range protocol.DangerousDimensionKeys {
			row = append(row, protocol.RiskDisplay(dangerous[key].Risk).Label)
		}
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}
		if err := f.SetCellValue(matrixSheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}
