// Package ltsv reads LTSV (Labeled Tab-Separated Values) input.
//
// A Source yields raw lines from standard input or a file, and the parser
// turns each non-blank line into a Record. Input is consumed one line at a
// time.
package ltsv

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// StdinName is the source name that binds to standard input.
const StdinName = "-"

type sourceKind int

const (
	stdinSource sourceKind = iota
	fileSource
)

// Source is a forward-only line reader over standard input or a file.
// It is not safe for concurrent use.
type Source struct {
	kind sourceKind
	name string
	r    *bufio.Reader
	f    *os.File
	line int
	eof  bool
}

// Open returns a Source for name. The name "-" reads from stdin; any other
// name is opened as a file.
func Open(name string, stdin io.Reader) (*Source, error) {
	if name == StdinName {
		if stdin == nil {
			stdin = os.Stdin
		}
		return &Source{
			kind: stdinSource,
			name: name,
			r:    bufio.NewReader(stdin),
		}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, &IOError{Op: "open", Name: name, Err: err}
	}
	return &Source{
		kind: fileSource,
		name: name,
		r:    bufio.NewReader(f),
		f:    f,
	}, nil
}

// Name returns the name the source was opened with.
func (s *Source) Name() string {
	return s.name
}

// IsStdin reports whether the source reads standard input.
func (s *Source) IsStdin() bool {
	return s.kind == stdinSource
}

// Line returns the number of lines read so far.
func (s *Source) Line() int {
	return s.line
}

// ReadLine returns the next line including its terminator. A last line
// without a terminator is returned as-is; the call after it returns io.EOF.
func (s *Source) ReadLine() (string, error) {
	if s.eof {
		return "", io.EOF
	}

	line, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", &IOError{Op: "read", Name: s.name, Err: err}
		}
		s.eof = true
		if line == "" {
			return "", io.EOF
		}
	}

	s.line++
	return line, nil
}

// Close releases the underlying file. Closing a stdin source is a no-op.
func (s *Source) Close() error {
	if s.kind != fileSource || s.f == nil {
		return nil
	}
	f := s.f
	s.f = nil
	return f.Close()
}
