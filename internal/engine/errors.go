package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrOffline is the remote-phase failure used when the connectivity
	// monitor reports offline at call time.
	ErrOffline = errors.New("runtime is offline")

	// ErrNoSession is returned when a mutation is attempted without an
	// active doctor profile.
	ErrNoSession = errors.New("engine: no active session")
)

// RemoteError reports that the remote collaborator rejected a mutation or
// the network failed. The optimistic write has already been rolled back
// when a caller sees one.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("engine: %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
