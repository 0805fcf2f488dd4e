// Package xlsxexport renders a client's generated reports into an Excel
// workbook for sharing with agencies that want spreadsheets, not JSON.
package xlsxexport

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/yongxin12/Macrohard/internal/domain"
)

const sheetName = "Reports"

// Workbook renders the reports into a single-sheet workbook and returns the
// xlsx bytes.
func Workbook(clientID string, reports []*domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	headers := []string{"Report ID", "Client ID", "Type", "Period Start", "Period End", "Generated At", "Hours Worked", "Wage Earned", "Goals Completed", "Goals In Progress"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for row, r := range reports {
		values := []interface{}{
			r.ReportID,
			r.ClientID,
			string(r.ReportType),
			r.DateRange.Start,
			r.DateRange.End,
			r.GeneratedAt.Format("2006-01-02 15:04:05"),
			metric(r, "hours_worked"),
			metric(r, "wage_earned"),
			metric(r, "goals_completed"),
			metric(r, "goals_in_progress"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("writing report row for %s: %w", r.ReportID, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializing workbook for %s: %w", clientID, err)
	}
	return buf.Bytes(), nil
}

func metric(r *domain.Report, key string) interface{} {
	if r.Metrics == nil {
		return ""
	}
	if v, ok := r.Metrics[key]; ok {
		return v
	}
	return ""
}
