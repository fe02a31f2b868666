package ports

import "time"

// Clock supplies the current time. Services take it as a dependency so tests
// can control elapsed-time rules instead of depending on real wall-clock time.
type Clock interface {
	Now() time.Time
}

// AccountNumberSource allocates fresh account numbers. Injected so tests can
// substitute a deterministic allocator and assert exact identifiers.
type AccountNumberSource interface {
	Next() (string, error)
}
