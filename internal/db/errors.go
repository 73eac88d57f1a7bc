package db

import "errors"

// ErrNotFound reports a point lookup for an id the engine does not hold.
var ErrNotFound = errors.New("db: document not found")

// Op constants name engine operations for error context and metrics.
const (
	OpSearch = "search"
	OpGet    = "get"
	OpIndex  = "index"
	OpUpdate = "update"
	OpDelete = "delete"
	OpPing   = "ping"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
