package config

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/sqlecto/internal/cli/output"
	"github.com/leapstack-labs/sqlecto/internal/rewrite"
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
	"github.com/leapstack-labs/sqlecto/pkg/transpile"
)

// ErrMissingParameter is returned when a required setting is absent.
var ErrMissingParameter = errors.New("missing required parameter")

// Check verifies the settings every command depends on.
func (c *Config) Check() error {
	if _, err := rewrite.ParseMode(c.MappingMode); err != nil {
		return err
	}
	if _, err := transpile.ParseUnsupportedLevel(c.Unsupported); err != nil {
		return err
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	return nil
}

// RequireDialects checks that both dialects are set and registered.
func (c *Config) RequireDialects() error {
	if err := requireDialect("source", c.SourceDialect); err != nil {
		return err
	}
	return requireDialect("target", c.TargetDialect)
}

func requireDialect(role, name string) error {
	if name == "" {
		return fmt.Errorf("%w: --%s-dialect", ErrMissingParameter, role)
	}
	if _, ok := dialect.Get(name); !ok {
		return fmt.Errorf("unsupported %s dialect: %s (%w)", role, name, transpile.ErrUnknownDialect)
	}
	return nil
}
