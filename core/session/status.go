package session

// Status tracks where a session is in its lifecycle. It is a single tri-state
// tag rather than separate active/modified flags, so an illegal combination
// like destroyed-and-changed cannot be represented.
type Status uint8

const (
	// StatusClean means no mutation has happened since the session was
	// created or loaded. A clean session does not need a backend write.
	StatusClean Status = iota
	// StatusChanged means at least one insert or remove has been attempted
	// since load, so the session state should be persisted.
	StatusChanged
	// StatusDestroyed is terminal: the session has been explicitly ended and
	// its backend entry should be removed. No transitions leave this state.
	StatusDestroyed
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusChanged:
		return "changed"
	case StatusDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}
