package report

import (
	"MS_Service_Health_Monitor/internal/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentID(t *testing.T) {
	assert.Equal(t, "2025-06-02_08-00-00_Intune.png", contentID("/data/images/customer1/2025-06-02_08-00-00_Intune.png"))
	assert.Equal(t, "chart_with_spaces.png", contentID("/tmp/chart with spaces.png"))
}

func TestHealthRow_Banding(t *testing.T) {
	tests := []struct {
		name       string
		percent    float64
		background string
	}{
		{name: "good band", percent: 99.5, background: "#d9ffd9"},
		{name: "good band lower bound", percent: 97.0, background: "#d9ffd9"},
		{name: "warn band", percent: 96.0, background: "#fff8d9"},
		{name: "bad band", percent: 66.67, background: "#ffd9d9"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row := healthRow(tc.percent)
			assert.Contains(t, row, tc.background)
		})
	}
}

func TestBuildHTMLBody(t *testing.T) {
	body := buildHTMLBody(model.CustomerReport{
		Customer: "customer1",
		Services: []model.ServiceReport{
			{
				Service: "Intune",
				Summary: model.HealthSummary{
					OverallHealthyPercent: 66.666666,
					Distribution: []model.StatusShare{
						{Status: "serviceOperational", Percent: 66.666666},
						{Status: "serviceInterruption", Percent: 33.333333},
					},
				},
				ChartPath: "/data/images/customer1/2025-06-02_08-00-00_Intune.png",
			},
			{
				Service: "Exchange",
				Summary: model.HealthSummary{
					OverallHealthyPercent: 100,
					Distribution: []model.StatusShare{
						{Status: "", Percent: 100},
					},
				},
			},
		},
	})

	assert.Contains(t, body, "Intune")
	assert.Contains(t, body, "66.67%")
	assert.Contains(t, body, `src="cid:2025-06-02_08-00-00_Intune.png"`)
	assert.Contains(t, body, "serviceOperational: 66.67%")
	assert.Contains(t, body, "(no status): 100.00%")
	// service without chart gets no img tag in its section
	assert.Equal(t, 1, strings.Count(body, "<img"))
	closes := strings.Count(body, "</tbody></table>")
	opens := strings.Count(body, "<tbody>")
	assert.Equal(t, opens, closes)
}
