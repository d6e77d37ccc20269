package models

import "fmt"

// SyncState is a state of the full sync state machine.
type SyncState int

const (
	StateNotStarted SyncState = iota
	StateDownloading
	StateUploading
	StateDrainingChanged
	StateFinished
	StateFailed
)

func (s SyncState) String() string {
	switch s {
	case StateNotStarted:
		return "notStarted"
	case StateDownloading:
		return "downloading"
	case StateUploading:
		return "uploading"
	case StateDrainingChanged:
		return "draining-changed"
	case StateFinished:
		return "finished"
	case StateFailed:
		return "failure"
	default:
		return "unknown"
	}
}

// SyncStatus is the observable status of the orchestrator. Progress is a
// percentage in [0, 100] for the downloading and uploading states, Err is set
// only for StateFailed.
type SyncStatus struct {
	State    SyncState
	Progress float64
	Err      error
}

func (s SyncStatus) String() string {
	switch s.State {
	case StateDownloading, StateUploading:
		return fmt.Sprintf("%s(%.0f%%)", s.State, s.Progress)
	case StateFailed:
		return fmt.Sprintf("%s(%v)", s.State, s.Err)
	default:
		return s.State.String()
	}
}
