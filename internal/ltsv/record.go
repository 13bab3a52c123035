package ltsv

import "sort"

// Record is one parsed LTSV line, mapping label to value.
type Record map[string]string

// Get returns the value for label and whether the record has it.
func (r Record) Get(label string) (string, bool) {
	v, ok := r[label]
	return v, ok
}

// Has reports whether the record contains label.
func (r Record) Has(label string) bool {
	_, ok := r[label]
	return ok
}

// Labels returns the record's labels sorted byte-wise.
func (r Record) Labels() []string {
	labels := make([]string, 0, len(r))
	for label := range r {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
