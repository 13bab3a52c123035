package query

import (
	"errors"
	"strings"

	"github.com/leapstack-labs/ltsvq/internal/ltsv"
)

// Field is one projected label of a selected record.
type Field struct {
	Label   string
	Value   string
	Present bool // false when the record lacks Label
}

// String formats the field as label:value, or "" when absent.
func (f Field) String() string {
	if !f.Present {
		return ""
	}
	return f.Label + ":" + f.Value
}

// FormatFields joins a selected row into a tab-separated LTSV line.
func FormatFields(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, "\t")
}

// Project returns the requested labels of rec, in order.
func Project(rec ltsv.Record, labels []string) []Field {
	fields := make([]Field, len(labels))
	for i, label := range labels {
		v, ok := rec.Get(label)
		fields[i] = Field{Label: label, Value: v, Present: ok}
	}
	return fields
}

// Select streams every record of the source named by args to emit, projected
// onto labels in the given order. Every label must appear in the header
// record; the first one that does not fails the query before anything is
// emitted. Later records missing a label yield an absent Field.
//
// Rows emitted before a mid-stream failure are not retracted.
func (e *Engine) Select(args []string, labels []string, emit func(fields []Field) error) error {
	src, cleanup, err := e.open(args)
	if err != nil {
		return err
	}
	defer cleanup()

	if len(labels) == 0 {
		return otherError("no labels selected", nil)
	}

	head, err := e.head(src)
	if err != nil {
		return err
	}
	for _, label := range labels {
		if !head.Has(label) {
			return unknownLabel(label)
		}
	}

	// The header line is also the first data line.
	if err := emit(Project(head, labels)); err != nil {
		return otherError("failed to write output", err)
	}

	rows := 1
	err = ltsv.EachRecord(src, func(rec ltsv.Record, _ string) error {
		rows++
		return emit(Project(rec, labels))
	})
	if err != nil {
		var parseErr *ltsv.ParseError
		var ioErr *ltsv.IOError
		if errors.As(err, &parseErr) || errors.As(err, &ioErr) {
			return otherError("failed to read records", err)
		}
		return otherError("failed to write output", err)
	}

	e.logger.Debug("selected records", "rows", rows, "labels", labels)
	return nil
}
