package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// FlagError reports invalid command-line usage: an unknown flag, a missing
// flag value, or a wrong combination of query flags.
type FlagError struct {
	Err error
}

func (e *FlagError) Error() string {
	return e.Err.Error()
}

func (e *FlagError) Unwrap() error {
	return e.Err
}

// UsageArgs wraps a positional-argument validator so its errors are
// reported as FlagError.
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &FlagError{Err: err}
		}
		return nil
	}
}

// QueryKind names the query selected on the command line.
type QueryKind string

// Query kinds, one per query flag.
const (
	QueryList    QueryKind = "list"
	QuerySelect  QueryKind = "select"
	QueryGroupBy QueryKind = "groupby"
	QueryOrderBy QueryKind = "orderby"
)

// QueryOptions holds the query flags of the root command.
type QueryOptions struct {
	List    bool
	Select  []string
	GroupBy string
	OrderBy string
}

// Any reports whether any query flag was given.
func (o *QueryOptions) Any() bool {
	return len(o.kinds()) > 0
}

func (o *QueryOptions) kinds() []QueryKind {
	var kinds []QueryKind
	if o.List {
		kinds = append(kinds, QueryList)
	}
	if len(o.Select) > 0 {
		kinds = append(kinds, QuerySelect)
	}
	if o.GroupBy != "" {
		kinds = append(kinds, QueryGroupBy)
	}
	if o.OrderBy != "" {
		kinds = append(kinds, QueryOrderBy)
	}
	return kinds
}

// Kind returns the single query the options select.
// Zero or several query flags is a FlagError.
func (o *QueryOptions) Kind() (QueryKind, error) {
	kinds := o.kinds()
	switch len(kinds) {
	case 0:
		return "", &FlagError{Err: errors.New("one of --list, --select, --groupby or --orderby is required")}
	case 1:
		return kinds[0], nil
	default:
		return "", &FlagError{Err: fmt.Errorf("only one query may be given, got --%s and --%s", kinds[0], kinds[1])}
	}
}

// AddQueryFlags registers the query flags on cmd, bound to opts.
func AddQueryFlags(cmd *cobra.Command, opts *QueryOptions) {
	cmd.Flags().BoolVarP(&opts.List, "list", "l", false, "List the labels of the first record")
	cmd.Flags().StringSliceVarP(&opts.Select, "select", "s", nil, "Select labels from every record (repeatable or comma-separated)")
	cmd.Flags().StringVarP(&opts.GroupBy, "groupby", "g", "", "Count records per value of a label")
	cmd.Flags().StringVarP(&opts.OrderBy, "orderby", "o", "", "Print records ordered by the value of a label")
}

// RunQuery runs the query selected by opts against the source named in args
// and renders the result.
func RunQuery(cmd *cobra.Command, opts *QueryOptions, args []string) error {
	kind, err := opts.Kind()
	if err != nil {
		return err
	}

	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("running query", "query", string(kind), "args", args)

	switch kind {
	case QueryList:
		return runList(cmdCtx, args)
	case QuerySelect:
		return runSelect(cmdCtx, args, opts.Select)
	case QueryGroupBy:
		return runGroupBy(cmdCtx, args, opts.GroupBy)
	default:
		return runOrderBy(cmdCtx, args, opts.OrderBy)
	}
}

func runList(cmdCtx *CommandContext, args []string) error {
	labels, err := cmdCtx.Engine.List(args)
	if err != nil {
		return err
	}
	if err := cmdCtx.Renderer.Labels(labels); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runSelect(cmdCtx *CommandContext, args, labels []string) error {
	rw := cmdCtx.Renderer.Rows(labels)
	err := cmdCtx.Engine.Select(args, labels, rw.Write)
	if err != nil && rw.Count() == 0 {
		// Nothing was rendered; leave the output empty.
		return err
	}
	if flushErr := rw.Flush(); flushErr != nil && err == nil {
		return fmt.Errorf("failed to write output: %w", flushErr)
	}
	return err
}

func runGroupBy(cmdCtx *CommandContext, args []string, label string) error {
	groups, err := cmdCtx.Engine.GroupBy(args, label)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("grouped records", "label", label, "groups", len(groups), "records", groups.Total())
	if err := cmdCtx.Renderer.Groups(label, groups.Sorted()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runOrderBy(cmdCtx *CommandContext, args []string, label string) error {
	lines, err := cmdCtx.Engine.OrderBy(args, label)
	if err != nil {
		return err
	}
	if err := cmdCtx.Renderer.Lines(lines); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
