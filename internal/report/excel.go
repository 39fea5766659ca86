package report

import (
	"MS_Service_Health_Monitor/internal/model"
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Health Summary"

// buildSummaryWorkbook produces the spreadsheet attachment with the numeric
// report content: one block of rows per service with its overall healthy
// percentage and per-status occurrence shares.
func buildSummaryWorkbook(report model.CustomerReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("report.buildSummaryWorkbook: %w", err)
	}
	headers := []string{"Service", "Healthy %", "Status", "Occurrence %"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("report.buildSummaryWorkbook: %w", err)
		}
		if err = f.SetCellValue(summarySheet, cell, header); err != nil {
			return nil, fmt.Errorf("report.buildSummaryWorkbook: %w", err)
		}
	}

	row := 2
	for _, service := range report.Services {
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), service.Service); err != nil {
			return nil, fmt.Errorf("report.buildSummaryWorkbook: %w", err)
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), service.Summary.OverallHealthyPercent); err != nil {
			return nil, fmt.Errorf("report.buildSummaryWorkbook: %w", err)
		}
		for _, share := range service.Summary.Distribution {
			if err := f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), share.Status); err != nil {
				return nil, fmt.Errorf("report.buildSummaryWorkbook: %w", err)
			}
			if err := f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), share.Percent); err != nil {
				return nil, fmt.Errorf("report.buildSummaryWorkbook: %w", err)
			}
			row++
		}
		if len(service.Summary.Distribution) == 0 {
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("report.buildSummaryWorkbook: %w", err)
	}
	return buf, nil
}
