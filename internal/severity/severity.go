// Package severity maps raw service status strings to integer health scores.
// The declared order of entries doubles as the category order on chart
// y-axes, so it is kept as an explicit list rather than a bare map.
package severity

// OKThreshold is the minimum score at which a status counts as healthy.
// Statuses like serviceDegradation still serve traffic and are treated as OK
// by operational policy; this is independent of report display banding.
const OKThreshold = 9

// Entry pairs a raw status string with its severity score, higher = healthier.
type Entry struct {
	Status string
	Score  int
}

// Map is an immutable ordered status-to-score mapping, built once at startup.
type Map struct {
	entries []Entry
	scores  map[string]int
}

func NewMap(entries []Entry) *Map {
	scores := make(map[string]int, len(entries))
	for _, e := range entries {
		scores[e.Status] = e.Score
	}
	return &Map{
		entries: entries,
		scores:  scores,
	}
}

// ScoreOf returns the configured score for a status, or 0 when the status is
// empty or unrecognized.
func (m *Map) ScoreOf(status string) int {
	return m.scores[status]
}

// IsHealthy reports whether a status meets the OK threshold.
func (m *Map) IsHealthy(status string) bool {
	return m.ScoreOf(status) >= OKThreshold
}

// Entries returns the mapping in declared order.
func (m *Map) Entries() []Entry {
	return m.entries
}

// Default returns the mapping for the Microsoft Graph service health states,
// ordered by operational importance.
// https://learn.microsoft.com/en-us/graph/api/resources/servicehealth?view=graph-rest-1.0
func Default() *Map {
	return NewMap([]Entry{
		{Status: "serviceOperational", Score: 10},
		{Status: "serviceRestored", Score: 9},
		{Status: "falsePositive", Score: 9},
		{Status: "postIncidentReviewPublished", Score: 9},
		{Status: "resolved", Score: 9},
		{Status: "resolvedExternal", Score: 9},
		{Status: "serviceDegradation", Score: 9},
		{Status: "investigating", Score: 8},
		{Status: "confirmed", Score: 8},
		{Status: "reported", Score: 8},
		{Status: "mitigatedExternal", Score: 7},
		{Status: "mitigated", Score: 7},
		{Status: "verifyingService", Score: 6},
		{Status: "restoringService", Score: 5},
		{Status: "extendedRecovery", Score: 5},
		{Status: "serviceInterruption", Score: 4},
		{Status: "investigationSuspended", Score: 3},
		{Status: "", Score: 0},
	})
}
