package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leapstack-labs/ltsvq/internal/cli/commands"
	"github.com/leapstack-labs/ltsvq/internal/query"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: ExitOK},
		{name: "flag error", err: &commands.FlagError{Err: errors.New("unknown flag: --x")}, want: ExitUsage},
		{name: "wrapped flag error", err: fmt.Errorf("usage: %w", &commands.FlagError{Err: errors.New("bad")}), want: ExitUsage},
		{name: "not enough args", err: query.ErrNotEnoughArgs, want: ExitQuery},
		{name: "too many args", err: query.ErrTooManyArgs, want: ExitQuery},
		{name: "unknown label", err: &query.Error{Kind: query.KindUnknownLabel, Label: "user"}, want: ExitQuery},
		{name: "other", err: &query.Error{Kind: query.KindOther, Msg: "failed to open file"}, want: ExitOperation},
		{name: "plain error", err: errors.New("boom"), want: ExitOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "ltsvq", cmd.Name())
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Example)

	for _, name := range []string{"list", "select", "groupby", "orderby"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %q should exist", name)
	}
	for _, name := range []string{"config", "format", "verbose", "no-color", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "persistent flag %q should exist", name)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"version", "completion"}, names)
}

func TestHasQueryFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "none", args: nil, want: false},
		{name: "subcommand", args: []string{"version"}, want: false},
		{name: "short", args: []string{"-l", "version"}, want: true},
		{name: "short with value", args: []string{"-g", "host", "help"}, want: true},
		{name: "attached value", args: []string{"-shost", "completion"}, want: true},
		{name: "grouped", args: []string{"-vl", "version"}, want: true},
		{name: "long", args: []string{"--orderby", "host", "version"}, want: true},
		{name: "long with value", args: []string{"--select=host", "version"}, want: true},
		{name: "format value is not a query", args: []string{"-fjson", "version"}, want: false},
		{name: "verbose only", args: []string{"-v", "version"}, want: false},
		{name: "stdin", args: []string{"-"}, want: false},
		{name: "after terminator", args: []string{"--", "-l"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasQueryFlag(tt.args))
		})
	}
}

func TestNewRootCmd_WithoutSubcommands(t *testing.T) {
	cmd, _ := newRootCmd(false)
	assert.Empty(t, cmd.Commands())
	assert.NotNil(t, cmd.Flags().Lookup("list"))
}
