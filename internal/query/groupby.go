package query

import (
	"sort"

	"github.com/leapstack-labs/ltsvq/internal/ltsv"
)

// Groups maps each distinct value of the grouping label to its count.
type Groups map[string]int

// GroupCount is one entry of a group-by result.
type GroupCount struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// Sorted returns the groups ordered by value, byte-wise ascending.
func (g Groups) Sorted() []GroupCount {
	out := make([]GroupCount, 0, len(g))
	for v, n := range g {
		out = append(out, GroupCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// Total returns the sum of all counts.
func (g Groups) Total() int {
	total := 0
	for _, n := range g {
		total += n
	}
	return total
}

// GroupBy counts the records of the source named by args by their value of
// label. Records without label are skipped.
func (e *Engine) GroupBy(args []string, label string) (Groups, error) {
	src, cleanup, err := e.open(args)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	groups := make(Groups)
	skipped := 0
	err = ltsv.EachRecord(src, func(rec ltsv.Record, _ string) error {
		v, ok := rec.Get(label)
		if !ok {
			skipped++
			return nil
		}
		groups[v]++
		return nil
	})
	if err != nil {
		return nil, otherError("failed to read records", err)
	}

	e.logger.Debug("grouped records", "label", label, "groups", len(groups), "counted", groups.Total(), "skipped", skipped)
	return groups, nil
}
