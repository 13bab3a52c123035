package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/ltsvq/internal/query"
	"gopkg.in/yaml.v3"
)

// groupJSON is the json/yaml shape of one group-by entry.
type groupJSON struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// Groups renders the result of a group-by query on label.
func (r *Renderer) Groups(label string, groups []query.GroupCount) error {
	switch r.mode {
	case ModeJSON, ModeYAML:
		out := make([]groupJSON, len(groups))
		for i, g := range groups {
			out[i] = groupJSON{Label: label, Value: g.Value, Count: g.Count}
		}
		if r.mode == ModeJSON {
			return writeJSON(r.w, out)
		}
		return writeYAML(r.w, out)
	case ModeTable:
		rows := make([]table.Row, len(groups))
		for i, g := range groups {
			rows[i] = table.Row{g.Value, g.Count}
		}
		r.renderTable(table.Row{label, "count"}, rows)
		return nil
	default:
		for _, g := range groups {
			if _, err := fmt.Fprintf(r.w, "%s:%s\tcount:%d\n", label, g.Value, g.Count); err != nil {
				return err
			}
		}
		return nil
	}
}

// RowWriter renders select results one row at a time.
// Text, json and yaml rows are written as they arrive; table rows are
// buffered until Flush.
type RowWriter struct {
	r       *Renderer
	labels  []string
	rows    []table.Row
	count   int
	jsonEnc *json.Encoder
	yamlEnc *yaml.Encoder
}

// Rows returns a RowWriter for a select query over labels.
func (r *Renderer) Rows(labels []string) *RowWriter {
	rw := &RowWriter{r: r, labels: labels}
	switch r.mode {
	case ModeJSON:
		rw.jsonEnc = json.NewEncoder(r.w)
	case ModeYAML:
		rw.yamlEnc = yaml.NewEncoder(r.w)
		rw.yamlEnc.SetIndent(2)
	}
	return rw
}

// Count returns the number of rows written so far.
func (rw *RowWriter) Count() int {
	return rw.count
}

// Write renders one selected row.
func (rw *RowWriter) Write(fields []query.Field) error {
	rw.count++
	switch rw.r.mode {
	case ModeJSON:
		return rw.jsonEnc.Encode(presentFields(fields))
	case ModeYAML:
		return rw.yamlEnc.Encode(presentFields(fields).yamlNode())
	case ModeTable:
		row := make(table.Row, len(fields))
		for i, f := range fields {
			row[i] = f.Value
		}
		rw.rows = append(rw.rows, row)
		return nil
	default:
		_, err := io.WriteString(rw.r.w, query.FormatFields(fields)+"\n")
		return err
	}
}

// Flush completes the output. It must be called once after the last Write,
// also when the query failed part way.
func (rw *RowWriter) Flush() error {
	switch rw.r.mode {
	case ModeYAML:
		return rw.yamlEnc.Close()
	case ModeTable:
		header := make(table.Row, len(rw.labels))
		for i, l := range rw.labels {
			header[i] = l
		}
		rw.r.renderTable(header, rw.rows)
	}
	return nil
}

func presentFields(fields []query.Field) *orderedObject {
	obj := &orderedObject{}
	for _, f := range fields {
		if f.Present {
			obj.add(f.Label, f.Value)
		}
	}
	return obj
}
