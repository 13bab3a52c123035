package ltsv

import (
	"errors"
	"fmt"
)

// ErrNoRecord is returned by ParseHead when the source ends before any
// non-blank line is found.
var ErrNoRecord = errors.New("no ltsv record found")

// ParseError reports a line that is not a tab-separated list of label:value items.
type ParseError struct {
	Line int    // 1-based line number, 0 if unknown
	Item string // the raw offending item
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid ltsv item: %s", e.Line, e.Item)
	}
	return fmt.Sprintf("invalid ltsv item: %s", e.Item)
}

// IOError reports a failure to open or read a line source.
type IOError struct {
	Op   string // "open" or "read"
	Name string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
