package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlecto/internal/cli/config"
	"github.com/leapstack-labs/sqlecto/internal/cli/output"
	"github.com/leapstack-labs/sqlecto/internal/engine"
	"github.com/leapstack-labs/sqlecto/internal/rewrite"
	"github.com/leapstack-labs/sqlecto/pkg/transpile"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, or defaults when none
// was loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// newEngine builds a batch engine from the configuration.
func newEngine(cc *CommandContext) (*engine.Engine, error) {
	cfg := cc.Cfg
	if err := cfg.RequireDialects(); err != nil {
		return nil, err
	}
	mode, err := rewrite.ParseMode(cfg.MappingMode)
	if err != nil {
		return nil, err
	}
	level, err := transpile.ParseUnsupportedLevel(cfg.Unsupported)
	if err != nil {
		return nil, err
	}

	return engine.New(engine.Config{
		SourceDialect:   cfg.SourceDialect,
		TargetDialect:   cfg.TargetDialect,
		SourceFiles:     cfg.SourceFiles,
		SourceDir:       cfg.SourceDir,
		OutputDir:       cfg.OutputDir,
		Mappings:        cfg.TableMappings,
		MappingMode:     mode,
		KeepCreateTable: cfg.KeepCreateTable,
		Pretty:          cfg.Pretty,
		Unsupported:     level,
		DryRun:          cfg.DryRun,
		Validate:        cfg.Validate,
		Logger:          cc.Logger,
	})
}

// converter rewrites table names then transpiles, for one-off input.
type converter struct {
	rewriter *rewrite.Rewriter
	tr       *transpile.Transpiler
}

func newConverter(cfg *config.Config) (*converter, error) {
	if err := cfg.RequireDialects(); err != nil {
		return nil, err
	}
	mode, err := rewrite.ParseMode(cfg.MappingMode)
	if err != nil {
		return nil, err
	}
	level, err := transpile.ParseUnsupportedLevel(cfg.Unsupported)
	if err != nil {
		return nil, err
	}
	tr, err := transpile.New(cfg.SourceDialect, cfg.TargetDialect,
		transpile.WithPretty(cfg.Pretty), transpile.WithUnsupported(level))
	if err != nil {
		return nil, err
	}
	return &converter{rewriter: rewrite.New(cfg.TableMappings, mode, tr.Read()), tr: tr}, nil
}

// convert transpiles every statement in sql.
func (c *converter) convert(sql string) (*transpile.Result, error) {
	return c.tr.Script(c.rewriter.Rewrite(sql))
}
