package repository

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is returned by every operation when no store
// connection exists.
var ErrStorageUnavailable = errors.New("database not available")

// Connection stages reported by ConnectError.
const (
	StageConfig  = "config"
	StageConnect = "connect"
	StageInit    = "init"
)

// ConnectError records why the store could not be opened at startup.
type ConnectError struct {
	Stage string
	Err   error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("repository: %s: %v", e.Stage, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// WriteError is returned when the store rejects an insert.
type WriteError struct {
	Collection string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("insert into %s: %v", e.Collection, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// QueryError is returned when the store rejects a read.
type QueryError struct {
	Collection string
	Err        error
}

func (e *QueryError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("query: %v", e.Err)
	}
	return fmt.Sprintf("query %s: %v", e.Collection, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// unavailableError matches ErrStorageUnavailable and unwraps to the
// ConnectError that put the store in degraded mode.
type unavailableError struct {
	reason *ConnectError
}

func (e *unavailableError) Error() string {
	if e.reason == nil {
		return ErrStorageUnavailable.Error()
	}
	return ErrStorageUnavailable.Error() + ": " + e.reason.Error()
}

func (e *unavailableError) Is(target error) bool { return target == ErrStorageUnavailable }

func (e *unavailableError) Unwrap() error {
	if e.reason == nil {
		return nil
	}
	return e.reason
}
