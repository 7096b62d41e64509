package finpulse

import "fmt"

// ValidationError reports a user input that cannot be turned into a position.
// Nothing has been applied when it is returned.
type ValidationError struct {
	Field  string // name of the offending field, e.g. "quantity"
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// PersistenceError reports a store read or write that failed or timed out.
// The in-memory portfolio still reflects the last successful write.
type PersistenceError struct {
	Op  string // load, add, update, reset
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
