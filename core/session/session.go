package session

// Session is the lifecycle-aware aggregate owning one caller's key/value
// state. It is the sole mutation surface for its State: all typed access goes
// through Insert, Get and Remove, which run the destroyed-session guard
// before touching the codec or the underlying map.
//
// A Session is scoped to a single in-flight request or operation sequence and
// is not safe for concurrent use; concurrency belongs at the Store boundary.
type Session struct {
	state  State
	status Status
}

// New returns a fresh session with empty state and StatusClean.
func New() *Session {
	return &Session{state: NewState(), status: StatusClean}
}

// FromState wraps state loaded from a store in a session. The session takes
// ownership of the map; the caller must not retain or mutate it. A freshly
// loaded session always starts at StatusClean even when the state is
// non-empty.
func FromState(state State) *Session {
	if state == nil {
		state = NewState()
	}
	return &Session{state: state, status: StatusClean}
}

// State hands the session's state back for persistence. The conversion is
// lossless and status-independent: the status is never part of the persisted
// representation.
func (s *Session) State() State {
	return s.state
}

// Status returns the session's current lifecycle status.
func (s *Session) Status() Status {
	return s.status
}

// Active reports whether the session still accepts reads and mutations.
func (s *Session) Active() bool {
	return s.status != StatusDestroyed
}

// Destroy ends the session. It is idempotent and irreversible; every later
// Insert, Get or Remove fails with ErrSessionDestroyed and the underlying
// state is never touched again.
func (s *Session) Destroy() {
	s.status = StatusDestroyed
}

// Insert encodes value and stores it under key, replacing any prior value.
// On success the session transitions to StatusChanged. A serialization
// failure leaves both state and status unchanged.
func Insert[T any](s *Session, key string, value T) error {
	if !s.Active() {
		return ErrSessionDestroyed
	}
	if err := InsertValue(s.state, key, value); err != nil {
		return err
	}
	s.status = StatusChanged
	return nil
}

// Get decodes the value stored under key as T. It never mutates state or
// status. An absent key returns the zero T and false with no error.
func Get[T any](s *Session, key string) (T, bool, error) {
	if !s.Active() {
		var zero T
		return zero, false, ErrSessionDestroyed
	}
	return GetValue[string, T](s.state, key)
}

// Remove deletes the value stored under key and decodes it as T. Any
// attempted remove counts as a mutation: the session transitions to
// StatusChanged even when the key was absent or the stored value failed to
// decode (the slot is cleared regardless, see RemoveValue). Callers relying
// on StatusChanged to decide whether a save is needed therefore conservatively
// re-save after a no-op remove.
func Remove[T any](s *Session, key string) (T, bool, error) {
	if !s.Active() {
		var zero T
		return zero, false, ErrSessionDestroyed
	}
	value, ok, err := RemoveValue[string, T](s.state, key)
	s.status = StatusChanged
	return value, ok, err
}
