// Package cli provides the command-line interface for ltsvq.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leapstack-labs/ltsvq/internal/cli/commands"
	"github.com/leapstack-labs/ltsvq/internal/cli/config"
	"github.com/leapstack-labs/ltsvq/internal/cli/output"
	"github.com/leapstack-labs/ltsvq/internal/query"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is the ltsvq version (set at build time).
var Version = "0.1.0"

// Exit codes of the ltsvq binary.
const (
	ExitOK        = 0
	ExitUsage     = 1
	ExitQuery     = 2
	ExitOperation = 3
)

// rootState is what PersistentPreRunE resolved for the running command.
type rootState struct {
	cfgFile string
	cfg     *config.Config
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd(true)
	return cmd
}

// newRootCmd builds the root command. Without subcommands every positional
// argument is a source name, even one spelled like a subcommand.
func newRootCmd(withSubcommands bool) (*cobra.Command, *rootState) {
	state := &rootState{}
	opts := &commands.QueryOptions{}

	rootCmd := &cobra.Command{
		Use:   "ltsvq [flags] FILE",
		Short: "ltsvq - query LTSV files",
		Long: `ltsvq queries LTSV (Labeled Tab-separated Values) files.

Each line of an LTSV file is a record of label:value fields separated by tabs.
FILE is the path of the file to read, or - to read standard input.
Exactly one of --list, --select, --groupby or --orderby must be given.`,
		Example: `  # List the labels of the first record
  ltsvq -l access.ltsv

  # Select fields from every record
  ltsvq -s host,status access.ltsv

  # Count records per status, reading standard input
  cat access.ltsv | ltsvq -g status -

  # Print records ordered by host as JSON
  ltsvq -o host -f json access.ltsv`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			if err := validateFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.LoadConfig(state.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			state.cfg = cfg

			logger := config.NewLogger(cfg, cmd.ErrOrStderr())
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = config.WithConfig(ctx, cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !opts.Any() {
				return cmd.Help()
			}
			return commands.RunQuery(cmd, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &commands.FlagError{Err: err}
	})

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&state.cfgFile, "config", "", "config file (default: ./ltsvq.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format (text|json|yaml|table)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored diagnostics")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	commands.AddQueryFlags(rootCmd, opts)

	// Register completion for format flag
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		modes := make([]string, len(output.Modes))
		for i, m := range output.Modes {
			modes[i] = string(m)
		}
		return modes, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	if withSubcommands {
		rootCmd.AddCommand(commands.NewVersionCommand(Version))
		rootCmd.AddCommand(NewCompletionCommand())
	}

	return rootCmd, state
}

// validateFlags checks the values of config flags given on the command line,
// so a bad value is reported as misuse rather than as a config error.
func validateFlags(flags *pflag.FlagSet) error {
	if f := flags.Lookup("format"); f != nil && f.Changed {
		if _, err := output.ParseMode(f.Value.String()); err != nil {
			return &commands.FlagError{Err: fmt.Errorf("invalid argument for --format: %w", err)}
		}
	}
	if f := flags.Lookup("log-level"); f != nil && f.Changed {
		if _, err := config.ParseLevel(f.Value.String()); err != nil {
			return &commands.FlagError{Err: fmt.Errorf("invalid argument for --log-level: %w", err)}
		}
	}
	return nil
}

// queryShorthands are the one-letter query flags.
const queryShorthands = "lsgo"

// hasQueryFlag reports whether args hold a query flag before any "--".
func hasQueryFlag(args []string) bool {
	for _, arg := range args {
		switch {
		case arg == "--":
			return false
		case strings.HasPrefix(arg, "--"):
			name, _, _ := strings.Cut(arg[2:], "=")
			switch name {
			case "list", "select", "groupby", "orderby":
				return true
			}
		case len(arg) > 1 && arg[0] == '-':
			// Boolean shorthands may be grouped, as in -vl.
			for _, c := range arg[1:] {
				if strings.ContainsRune(queryShorthands, c) {
					return true
				}
				if c != 'v' && c != 'h' {
					break
				}
			}
		}
	}
	return false
}

// Execute runs the root command against the process arguments and streams.
// It returns the process exit code.
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run runs the root command with args and the given streams, prints a
// diagnostic to stderr on failure and returns the exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// A query names a source, so "ltsvq -l version" reads the file "version".
	rootCmd, state := newRootCmd(!hasQueryFlag(args))
	if args == nil {
		// cobra falls back to os.Args for nil args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		noColor := state.cfg != nil && state.cfg.NoColor
		r := output.NewRenderer(stdout, stderr, output.ModeText, noColor)
		var flagErr *commands.FlagError
		if errors.As(err, &flagErr) {
			err = fmt.Errorf("%w (see '%s --help')", err, rootCmd.Name())
		}
		r.Error(err)
	}
	return ExitCode(err)
}

// ExitCode maps an error returned by the root command to an exit code:
// 0 on success, 1 for command-line misuse, 2 for query errors and 3 for
// failures while reading or parsing input.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var flagErr *commands.FlagError
	if errors.As(err, &flagErr) {
		return ExitUsage
	}

	var qErr *query.Error
	if errors.As(err, &qErr) && qErr.Kind != query.KindOther {
		return ExitQuery
	}
	return ExitOperation
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ltsvq.

To load completions:

Bash:
  $ source <(ltsvq completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ ltsvq completion bash > /etc/bash_completion.d/ltsvq
  # macOS:
  $ ltsvq completion bash > $(brew --prefix)/etc/bash_completion.d/ltsvq

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ ltsvq completion zsh > "${fpath[1]}/_ltsvq"

Fish:
  $ ltsvq completion fish | source

  # To load completions for each session, execute once:
  $ ltsvq completion fish > ~/.config/fish/completions/ltsvq.fish

PowerShell:
  PS> ltsvq completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  commands.UsageArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
