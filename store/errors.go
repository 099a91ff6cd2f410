package store

import (
	"errors"
	"fmt"
)

// Lookup failures callers are expected to branch on.
var (
	// ErrNotFound means no document matches the requested id.
	ErrNotFound = errors.New("recipe not found")
	// ErrDataIntegrity means the document exists but carries no recipe body.
	ErrDataIntegrity = errors.New("recipe data not found")
)

// StoreError wraps a transport or query failure from the document store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
