package view

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyPopulated = errors.New("selectors already populated")
	ErrMalformedEntry   = errors.New("table entry is nil")
	ErrUnknownKey       = errors.New("no table entry for key")
	ErrNoSelector       = errors.New("selector not found")
)

// PopulationError reports where filling the selectors stopped. Options appended before the failure stay in place.
type PopulationError struct {
	Table string
	Key   int
	Added int
	Err   error
}

func (e *PopulationError) Error() string {
	return fmt.Sprintf("populating %s selectors stopped at key %d after %d options: %s", e.Table, e.Key, e.Added, e.Err)
}

func (e *PopulationError) Unwrap() error { return e.Err }

// LookupError reports a selector whose value does not resolve to a table entry.
type LookupError struct {
	Selector string
	Value    string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("looking up %q from #%s: %s", e.Value, e.Selector, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }
