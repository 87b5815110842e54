package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlecto/internal/cli/output"
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

// DialectInfo describes a registered dialect.
type DialectInfo struct {
	Name          string   `json:"name"`
	Aliases       []string `json:"aliases"`
	Quote         string   `json:"identifier_quote"`
	Normalization string   `json:"normalization"`
	Limit         string   `json:"limit"`
	CastOperator  bool     `json:"cast_operator"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List supported SQL dialects",
		Long:  `List the dialects that can be used as --source-dialect or --target-dialect.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDialects(NewCommandContext(cmd).Renderer)
		},
	}
}

func listDialects() []DialectInfo {
	names := dialect.List()
	infos := make([]DialectInfo, 0, len(names))
	for _, name := range names {
		d := dialect.MustGet(name)
		aliases := d.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		infos = append(infos, DialectInfo{
			Name:          d.Name,
			Aliases:       aliases,
			Quote:         d.Identifiers.Quote + d.Identifiers.QuoteEnd,
			Normalization: d.Identifiers.Normalization.String(),
			Limit:         d.Limit.String(),
			CastOperator:  d.CastOperator,
		})
	}
	return infos
}

func runDialects(r *output.Renderer) error {
	infos := listDialects()
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		cast := ""
		if info.CastOperator {
			cast = "::"
		}
		rows = append(rows, []string{
			info.Name,
			strings.Join(info.Aliases, ", "),
			info.Quote,
			info.Normalization,
			info.Limit,
			cast,
		})
	}
	r.Header(1, "Dialects")
	r.Table([]string{"Dialect", "Aliases", "Quote", "Identifiers", "Row limit", "Cast"}, rows)
	return nil
}
