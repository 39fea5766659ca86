// Package analysis computes health percentages from observed status
// sequences.
package analysis

import (
	apperrors "MS_Service_Health_Monitor/internal/errors"
	"MS_Service_Health_Monitor/internal/model"
	"MS_Service_Health_Monitor/internal/severity"
	"fmt"
)

type Aggregator interface {
	Aggregate(records []model.StatusRecord) (model.HealthSummary, error)
}

type aggregator struct {
	severityMap *severity.Map
}

// Aggregate computes the overall healthy percentage and the per-status
// occurrence distribution over a time-ordered record sequence for one
// service. Distribution percentages are computed over the same record set and
// sum to 100 within float tolerance. The caller is expected to have filtered
// to a non-empty sequence; an empty one is a reportable condition, not a
// crash.
func (a *aggregator) Aggregate(records []model.StatusRecord) (model.HealthSummary, error) {
	if len(records) == 0 {
		return model.HealthSummary{}, fmt.Errorf("Aggregator.Aggregate: %w", apperrors.ErrEmptyDataset)
	}

	total := len(records)
	okCount := 0
	counts := make(map[string]int, len(records))
	var observed []string
	for _, record := range records {
		if a.severityMap.IsHealthy(record.Status) {
			okCount++
		}
		if _, seen := counts[record.Status]; !seen {
			observed = append(observed, record.Status)
		}
		counts[record.Status]++
	}

	distribution := make([]model.StatusShare, 0, len(observed))
	for _, status := range observed {
		distribution = append(distribution, model.StatusShare{
			Status:  status,
			Percent: float64(counts[status]) / float64(total) * 100,
		})
	}

	return model.HealthSummary{
		OverallHealthyPercent: float64(okCount) / float64(total) * 100,
		Distribution:          distribution,
	}, nil
}

func NewAggregator(severityMap *severity.Map) Aggregator {
	return &aggregator{
		severityMap: severityMap,
	}
}
