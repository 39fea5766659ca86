package model

// StatusShare is the occurrence percentage of a single raw status within an
// observed sequence. Shares are kept in first-observed order so report output
// is deterministic.
type StatusShare struct {
	Status  string
	Percent float64
}

// HealthSummary is derived from a status sequence for one (customer, service)
// pair. Values are not rounded; formatting is a presentation concern.
type HealthSummary struct {
	OverallHealthyPercent float64
	Distribution          []StatusShare
}

// ServiceReport is the per-service analysis result included in a customer
// report. ChartPath is empty when chart rendering failed and the report
// degrades to the numeric summary.
type ServiceReport struct {
	Service   string
	Summary   HealthSummary
	ChartPath string
}

// CustomerReport is the assembled report payload for a single customer.
type CustomerReport struct {
	Customer string
	Services []ServiceReport
	HTMLBody string
}
