package xlsxexport_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/xlsxexport"
)

func TestWorkbookContainsReportRows(t *testing.T) {
	reports := []*domain.Report{
		{
			ReportID:    "summary-client1-20230820",
			ClientID:    "client1",
			ReportType:  domain.ReportSummary,
			DateRange:   domain.DateRange{Start: "2023-07-20", End: "2023-08-20"},
			GeneratedAt: time.Date(2023, 8, 20, 12, 0, 0, 0, time.UTC),
			Metrics: map[string]interface{}{
				"hours_worked":      80,
				"wage_earned":       1240.00,
				"goals_completed":   1,
				"goals_in_progress": 1,
			},
		},
	}

	data, err := xlsxexport.Workbook("client1", reports)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Reports")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Report ID", rows[0][0])
	assert.Equal(t, "summary-client1-20230820", rows[1][0])
	assert.Equal(t, "summary", rows[1][2])
	assert.Equal(t, "80", rows[1][6])
}

func TestWorkbookEmptyReportList(t *testing.T) {
	data, err := xlsxexport.Workbook("client1", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Reports")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
