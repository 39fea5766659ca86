package report

import (
	"MS_Service_Health_Monitor/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildSummaryWorkbook(t *testing.T) {
	workbook, err := buildSummaryWorkbook(model.CustomerReport{
		Customer: "customer1",
		Services: []model.ServiceReport{
			{
				Service: "Intune",
				Summary: model.HealthSummary{
					OverallHealthyPercent: 66.67,
					Distribution: []model.StatusShare{
						{Status: "serviceOperational", Percent: 66.67},
						{Status: "serviceInterruption", Percent: 33.33},
					},
				},
			},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(workbook)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, []string{"Service", "Healthy %", "Status", "Occurrence %"}, rows[0])
	assert.Equal(t, "Intune", rows[1][0])
	assert.Equal(t, "serviceOperational", rows[1][2])
	assert.Equal(t, "serviceInterruption", rows[2][2])
}

func TestBuildSummaryWorkbook_EmptyReport(t *testing.T) {
	workbook, err := buildSummaryWorkbook(model.CustomerReport{Customer: "customer1"})
	require.NoError(t, err)
	assert.Greater(t, workbook.Len(), 0)
}
