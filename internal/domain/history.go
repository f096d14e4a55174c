package domain

import "time"

// HistoryStatus is the outcome of a recorded invocation.
type HistoryStatus string

const (
	StatusOK    HistoryStatus = "ok"
	StatusError HistoryStatus = "error"
)

// HistoryEntry is one command line run through the registry.
type HistoryEntry struct {
	ID        string
	Line      string
	Root      string // primary name of the root command, empty if none matched
	Status    HistoryStatus
	Message   string // error text for failed invocations
	CreatedAt time.Time
}

// Failed reports whether the invocation returned an error.
func (e HistoryEntry) Failed() bool {
	return e.Status == StatusError
}
