package query

import "fmt"

// Kind classifies a query failure for the command-line boundary.
type Kind int

// Failure kinds.
const (
	KindOther Kind = iota
	KindNotEnoughArgs
	KindTooManyArgs
	KindUnknownLabel
)

func (k Kind) String() string {
	switch k {
	case KindNotEnoughArgs:
		return "not enough arguments"
	case KindTooManyArgs:
		return "too many arguments"
	case KindUnknownLabel:
		return "unknown label"
	default:
		return "other"
	}
}

// Sentinel errors for the argument-count kinds, usable with errors.Is.
var (
	ErrNotEnoughArgs = &Error{Kind: KindNotEnoughArgs}
	ErrTooManyArgs   = &Error{Kind: KindTooManyArgs}
)

// Error is the error type returned by every Engine operation.
type Error struct {
	Kind  Kind
	Label string // set for KindUnknownLabel
	Msg   string // context for KindOther, e.g. "failed to open file"
	Err   error  // lower-layer cause
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotEnoughArgs:
		return "not enough arguments: a file name or - is required"
	case KindTooManyArgs:
		return "too many arguments: exactly one file name or - is allowed"
	case KindUnknownLabel:
		return fmt.Sprintf("unknown label: %s", e.Label)
	}
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Msg
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same Kind, so errors.Is(err, ErrTooManyArgs)
// holds for any too-many-arguments failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Kind != KindOther
}

func otherError(msg string, err error) *Error {
	return &Error{Kind: KindOther, Msg: msg, Err: err}
}

func unknownLabel(label string) *Error {
	return &Error{Kind: KindUnknownLabel, Label: label}
}
