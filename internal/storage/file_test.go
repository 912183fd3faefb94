package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorder_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "submissions.jsonl")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}

	ev1 := SubmissionEvent{
		RequestID:  "req-1",
		ReceivedAt: time.Unix(1, 0).UTC(),
		Record:     map[string]string{"nickname": "Amy", "story": "Hello"},
	}
	ev2 := SubmissionEvent{
		RequestID:  "req-2",
		ReceivedAt: time.Unix(2, 0).UTC(),
		Record:     map[string]string{"nickname": "Bob", "story": "World"},
	}
	if err := rec.AppendSubmission(ev1); err != nil {
		t.Fatalf("append1: %v", err)
	}
	if err := rec.AppendSubmission(ev2); err != nil {
		t.Fatalf("append2: %v", err)
	}

	events, err := rec.LoadSubmissions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2, got %d", len(events))
	}
	if events[0].RequestID != "req-1" || events[1].RequestID != "req-2" {
		t.Fatalf("order mismatch: %+v", events)
	}
	if events[0].Record["nickname"] != "Amy" {
		t.Fatalf("record not preserved: %+v", events[0])
	}

	// ensure file exists and non-empty
	st, err := os.Stat(p)
	if err != nil || st.Size() == 0 {
		t.Fatalf("file not written")
	}
}
