package storage

import "time"

// SubmissionEvent is one successfully persisted story submission. The
// spreadsheet stays the system of record; this log is append-only
// observability and is never read back by the service.
type SubmissionEvent struct {
	RequestID  string            `json:"request_id"`
	ReceivedAt time.Time         `json:"received_at"`
	Record     map[string]string `json:"record"`
}

// Recorder abstracts persistence of submission events.
// AppendSubmission should atomically append a new event.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendSubmission(event SubmissionEvent) error
	LoadSubmissions() ([]SubmissionEvent, error)
}
