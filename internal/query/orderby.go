package query

import (
	"slices"
	"strings"

	"github.com/leapstack-labs/ltsvq/internal/ltsv"
)

// orderKey pairs a record's sort key with its original line.
type orderKey struct {
	key  string
	line string
}

// OrderBy returns every line of the source named by args, stably sorted
// ascending by the byte-wise value of label. Records without label sort
// as the empty string. The whole input is buffered.
func (e *Engine) OrderBy(args []string, label string) ([]string, error) {
	src, cleanup, err := e.open(args)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	var keys []orderKey
	err = ltsv.EachRecord(src, func(rec ltsv.Record, line string) error {
		v, _ := rec.Get(label)
		keys = append(keys, orderKey{key: v, line: line})
		return nil
	})
	if err != nil {
		return nil, otherError("failed to read records", err)
	}

	slices.SortStableFunc(keys, func(a, b orderKey) int {
		return strings.Compare(a.key, b.key)
	})

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k.line
	}
	e.logger.Debug("ordered records", "label", label, "rows", len(lines))
	return lines, nil
}
