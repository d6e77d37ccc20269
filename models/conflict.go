package models

// ConflictPolicy selects how a checksum conflict is resolved for a type.
type ConflictPolicy int

const (
	// PolicyReplace merges with the remote copy (last writer wins) and
	// re-saves.
	PolicyReplace ConflictPolicy = iota
	// PolicyFetchRemoteAndError never overwrites: the conflict is reported
	// with the remote copies for the caller to resolve.
	PolicyFetchRemoteAndError
)

func (p ConflictPolicy) String() string {
	switch p {
	case PolicyReplace:
		return "replace"
	case PolicyFetchRemoteAndError:
		return "fetchRemoteAndError"
	default:
		return "unknown"
	}
}
