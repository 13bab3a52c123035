package ltsv

import (
	"errors"
	"io"
	"strings"
)

const (
	itemSeparator  = "\t"
	labelSeparator = ":"
)

// ParseLine parses a single LTSV line. A trailing line terminator is ignored.
// Every tab-separated item must contain a colon; the first colon splits the
// label from the value. Later duplicate labels overwrite earlier ones.
func ParseLine(line string) (Record, error) {
	return parseLine(trimTerminator(line), 0)
}

// ParseHead skips blank lines and parses the first substantive line of src.
// It returns ErrNoRecord when src holds no such line.
func ParseHead(src *Source) (Record, error) {
	rec, _, err := next(src)
	if errors.Is(err, io.EOF) {
		return nil, ErrNoRecord
	}
	return rec, err
}

// EachRecord parses every remaining non-blank line of src and calls visit
// with the record and the raw line, terminator stripped. It stops at the
// first parse, read, or visit error and returns it; reaching the end of
// src returns nil.
func EachRecord(src *Source, visit func(rec Record, line string) error) error {
	for {
		rec, line, err := next(src)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := visit(rec, line); err != nil {
			return err
		}
	}
}

// next returns the next non-blank line of src, parsed.
func next(src *Source) (Record, string, error) {
	for {
		raw, err := src.ReadLine()
		if err != nil {
			return nil, "", err
		}

		line := trimTerminator(raw)
		if line == "" {
			continue
		}

		rec, err := parseLine(line, src.Line())
		if err != nil {
			return nil, "", err
		}
		return rec, line, nil
	}
}

func parseLine(line string, lineNo int) (Record, error) {
	items := strings.Split(line, itemSeparator)
	rec := make(Record, len(items))
	for _, item := range items {
		label, value, ok := strings.Cut(item, labelSeparator)
		if !ok {
			return nil, &ParseError{Line: lineNo, Item: item}
		}
		rec[label] = value
	}
	return rec, nil
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
