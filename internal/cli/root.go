// Package cli provides the command-line interface for sqlecto.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlecto/internal/cli/commands"
	"github.com/leapstack-labs/sqlecto/internal/cli/config"
	"github.com/leapstack-labs/sqlecto/internal/cli/output"
	"github.com/leapstack-labs/sqlecto/pkg/dialect"

	// Register every dialect
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/all"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqlecto",
		Short: "sqlecto - SQL dialect transpiler and table rewriter",
		Long: `sqlecto converts SQL between dialects.

It reads .sql files and Python files with spark.sql("...") strings,
rewrites table names from source_table:target_table mappings, transpiles
every statement to the target dialect and writes the results into an
output directory that mirrors the inputs.

Run without a subcommand to process a batch.`,
		Example: `  sqlecto --source-dialect spark --target-dialect postgres --source-dir queries
  sqlecto --config-file sqlecto.yaml
  sqlecto transpile --source-dialect mysql --target-dialect duckdb "SELECT IFNULL(a, 0) FROM t"`,
		Version: Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig("", cmd.Flags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, config.LoggerKey(), logger))

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return commands.RunBatch(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
SQL dialect transpiler and table rewriter
`)

	// Global persistent flags
	config.RegisterFlags(rootCmd.PersistentFlags())

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes(), cobra.ShellCompDirectiveNoFileComp
	})

	completeDialects := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.List(), cobra.ShellCompDirectiveNoFileComp
	}
	_ = rootCmd.RegisterFlagCompletionFunc("source-dialect", completeDialects)
	_ = rootCmd.RegisterFlagCompletionFunc("target-dialect", completeDialects)
	_ = rootCmd.RegisterFlagCompletionFunc("mapping-mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"literal", "identifier"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("unsupported", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"ignore", "warn", "raise"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewTranspileCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewShellCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command. An interrupt cancels the batch between
// files.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sqlecto.

To load completions:

Bash:
  $ source <(sqlecto completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ sqlecto completion bash > /etc/bash_completion.d/sqlecto
  # macOS:
  $ sqlecto completion bash > $(brew --prefix)/etc/bash_completion.d/sqlecto

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ sqlecto completion zsh > "${fpath[1]}/_sqlecto"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ sqlecto completion fish | source

  # To load completions for each session, execute once:
  $ sqlecto completion fish > ~/.config/fish/completions/sqlecto.fish

PowerShell:
  PS> sqlecto completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> sqlecto completion powershell > sqlecto.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
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
