package commands

import (
	"log/slog"

	"github.com/leapstack-labs/ltsvq/internal/cli/config"
	"github.com/leapstack-labs/ltsvq/internal/cli/output"
	"github.com/leapstack-labs/ltsvq/internal/query"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *query.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine and renderer.
// The engine reads "-" from the command's input stream.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	mode, err := output.ParseMode(cfg.Format)
	if err != nil {
		return nil, err
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode, cfg.NoColor)

	eng := query.New(query.Config{
		Stdin:  cmd.InOrStdin(),
		Logger: logger,
	})

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Engine:   eng,
		Renderer: r,
	}, nil
}
