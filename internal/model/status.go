package model

import "time"

// TimestampLayout is the sortable format used for timestamps in the local
// database, second precision.
const TimestampLayout = "2006-01-02 15:04:05"

// StatusRecord is one observed health status of one service for one customer.
// Records are immutable once written; they are only ever removed by retention
// pruning.
type StatusRecord struct {
	Customer  string
	Timestamp time.Time
	Service   string
	Status    string
}
