// Package query implements the LTSV queries: list, select, group-by and
// order-by. Each operation opens exactly one line source, runs to
// completion and releases the source before returning.
package query

import (
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/ltsvq/internal/ltsv"
)

// Engine runs queries against a single LTSV source per call.
type Engine struct {
	stdin  io.Reader
	logger *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Stdin is read when the source name is "-" (defaults to os.Stdin)
	Stdin io.Reader
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Engine{stdin: stdin, logger: logger}
}

// sourceName validates that args holds exactly one source name.
func sourceName(args []string) (string, error) {
	switch {
	case len(args) == 0:
		return "", ErrNotEnoughArgs
	case len(args) > 1:
		return "", ErrTooManyArgs
	}
	return args[0], nil
}

// open validates args and opens the named source. The caller must call the
// returned cleanup function.
func (e *Engine) open(args []string) (*ltsv.Source, func(), error) {
	name, err := sourceName(args)
	if err != nil {
		return nil, nil, err
	}

	src, err := ltsv.Open(name, e.stdin)
	if err != nil {
		return nil, nil, otherError("failed to open file", err)
	}
	e.logger.Debug("opened source", "name", name, "stdin", src.IsStdin())

	cleanup := func() {
		if err := src.Close(); err != nil {
			e.logger.Warn("failed to close source", "name", name, "error", err)
		}
		e.logger.Debug("closed source", "name", name, "lines", src.Line())
	}
	return src, cleanup, nil
}

// head parses the header record of src.
func (e *Engine) head(src *ltsv.Source) (ltsv.Record, error) {
	rec, err := ltsv.ParseHead(src)
	if err != nil {
		return nil, otherError("failed to parse head", err)
	}
	e.logger.Debug("parsed header", "labels", rec.Labels())
	return rec, nil
}
