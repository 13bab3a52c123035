package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/leapstack-labs/ltsvq/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestRenderer(mode Mode) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, false, mode), out, errOut
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeText},
		{in: "text", want: ModeText},
		{in: "JSON", want: ModeJSON},
		{in: "yaml", want: ModeYAML},
		{in: "table", want: ModeTable},
		{in: "markdown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "text, json, yaml, table")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_Labels(t *testing.T) {
	labels := []string{"host", "status"}

	tests := []struct {
		mode Mode
		want string
	}{
		{mode: ModeText, want: "host\nstatus\n"},
		{mode: ModeJSON, want: "[\n  \"host\",\n  \"status\"\n]\n"},
		{mode: ModeYAML, want: "- host\n- status\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			r, out, _ := newTestRenderer(tt.mode)
			require.NoError(t, r.Labels(labels))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRenderer_LabelsTable(t *testing.T) {
	r, out, _ := newTestRenderer(ModeTable)
	require.NoError(t, r.Labels([]string{"host", "status"}))

	got := out.String()
	assert.Contains(t, got, "LABEL")
	assert.Contains(t, got, "host")
	assert.Contains(t, got, "status")
}

func TestRenderer_EmptyJSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON)
	require.NoError(t, r.Lines(nil))
	assert.Equal(t, "[]\n", out.String())
}

func TestRenderer_Groups(t *testing.T) {
	groups := query.Groups{"b": 1, "a": 2}.Sorted()

	r, out, _ := newTestRenderer(ModeText)
	require.NoError(t, r.Groups("host", groups))
	assert.Equal(t, "host:a\tcount:2\nhost:b\tcount:1\n", out.String())

	r, out, _ = newTestRenderer(ModeJSON)
	require.NoError(t, r.Groups("host", groups))
	assert.JSONEq(t, `[{"label":"host","value":"a","count":2},{"label":"host","value":"b","count":1}]`, out.String())

	r, out, _ = newTestRenderer(ModeYAML)
	require.NoError(t, r.Groups("host", groups))
	assert.Equal(t, "- label: host\n  value: a\n  count: 2\n- label: host\n  value: b\n  count: 1\n", out.String())

	r, out, _ = newTestRenderer(ModeTable)
	require.NoError(t, r.Groups("host", groups))
	assert.Contains(t, out.String(), "HOST")
	assert.Contains(t, out.String(), "COUNT")
}

func TestRenderer_Lines(t *testing.T) {
	lines := []string{"host:a\tstatus:200", "host:b\tstatus:404"}

	r, out, _ := newTestRenderer(ModeText)
	require.NoError(t, r.Lines(lines))
	assert.Equal(t, "host:a\tstatus:200\nhost:b\tstatus:404\n", out.String())

	r, out, _ = newTestRenderer(ModeJSON)
	require.NoError(t, r.Lines(lines))
	assert.JSONEq(t, `["host:a\tstatus:200","host:b\tstatus:404"]`, out.String())
}

func selectRows() [][]query.Field {
	return [][]query.Field{
		{{Label: "status", Value: "200", Present: true}, {Label: "host", Value: "a", Present: true}},
		{{Label: "status", Present: false}, {Label: "host", Value: "b", Present: true}},
	}
}

func TestRowWriter_Text(t *testing.T) {
	r, out, _ := newTestRenderer(ModeText)
	rw := r.Rows([]string{"status", "host"})
	for _, row := range selectRows() {
		require.NoError(t, rw.Write(row))
	}
	require.NoError(t, rw.Flush())
	assert.Equal(t, 2, rw.Count())
	assert.Equal(t, "status:200\thost:a\n\thost:b\n", out.String())
}

func TestRowWriter_JSONKeepsOrder(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON)
	rw := r.Rows([]string{"status", "host"})
	for _, row := range selectRows() {
		require.NoError(t, rw.Write(row))
	}
	require.NoError(t, rw.Flush())
	assert.Equal(t, "{\"status\":\"200\",\"host\":\"a\"}\n{\"host\":\"b\"}\n", out.String())
}

func TestRowWriter_YAML(t *testing.T) {
	r, out, _ := newTestRenderer(ModeYAML)
	rw := r.Rows([]string{"status", "host"})
	for _, row := range selectRows() {
		require.NoError(t, rw.Write(row))
	}
	require.NoError(t, rw.Flush())
	docs := strings.Split(out.String(), "---\n")
	require.Len(t, docs, 2)
	assert.Contains(t, docs[0], `status: "200"`)
	assert.True(t, strings.Index(docs[0], "status") < strings.Index(docs[0], "host"), "fields keep requested order")
	assert.Equal(t, "host: b\n", docs[1])
}

func TestRowWriter_RepeatedLabel(t *testing.T) {
	labels := []string{"host", "status", "host"}
	row := []query.Field{
		{Label: "host", Value: "a", Present: true},
		{Label: "status", Value: "200", Present: true},
		{Label: "host", Value: "a", Present: true},
	}

	r, out, _ := newTestRenderer(ModeText)
	rw := r.Rows(labels)
	require.NoError(t, rw.Write(row))
	require.NoError(t, rw.Flush())
	assert.Equal(t, "host:a\tstatus:200\thost:a\n", out.String())

	r, out, _ = newTestRenderer(ModeJSON)
	rw = r.Rows(labels)
	require.NoError(t, rw.Write(row))
	require.NoError(t, rw.Flush())
	assert.Equal(t, "{\"host\":\"a\",\"status\":\"200\"}\n", out.String())
	var obj map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &obj))

	r, out, _ = newTestRenderer(ModeYAML)
	rw = r.Rows(labels)
	require.NoError(t, rw.Write(row))
	require.NoError(t, rw.Flush())
	var doc map[string]string
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, map[string]string{"host": "a", "status": "200"}, doc)
	assert.True(t, strings.HasPrefix(out.String(), "host: a\n"), "first position kept")
}

func TestRowWriter_TableBuffersUntilFlush(t *testing.T) {
	r, out, _ := newTestRenderer(ModeTable)
	rw := r.Rows([]string{"status", "host"})
	for _, row := range selectRows() {
		require.NoError(t, rw.Write(row))
	}
	assert.Empty(t, out.String())

	require.NoError(t, rw.Flush())
	got := out.String()
	assert.Contains(t, got, "STATUS")
	assert.Contains(t, got, "200")
	assert.Equal(t, 1, strings.Count(got, " b "))
}

func TestRenderer_Error(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeText)
	r.Error(errors.New("unknown label: user"))

	assert.Empty(t, out.String())
	assert.Equal(t, "Error: unknown label: user\n", errOut.String())
}

func TestRenderer_ErrorSingleLine(t *testing.T) {
	r, _, errOut := newTestRenderer(ModeText)
	r.Error(errors.New("first\nsecond"))
	assert.Equal(t, "Error: first second\n", errOut.String())
}
