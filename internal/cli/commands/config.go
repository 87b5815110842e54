package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlecto/internal/cli/config"
	"github.com/leapstack-labs/sqlecto/internal/cli/output"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Print the configuration after merging defaults, the config file,
.env values, SQLECTO_ environment variables and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			return runConfig(cc.Renderer, cc.Cfg)
		},
	}
}

func runConfig(r *output.Renderer, cfg *config.Config) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{
			"config_file": config.GetConfigFileUsed(),
			"config":      cfg,
		})
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	source := config.GetConfigFileUsed()
	if source == "" {
		source = "none"
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatKeyValue("Config file", source))
		r.Println()
		r.Println(output.FormatCodeBlock("yaml", string(data)))
		return nil
	}
	r.Muted("# config file: " + source)
	r.Printf("%s", data)
	return nil
}
