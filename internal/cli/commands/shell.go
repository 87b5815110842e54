package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlecto/internal/cli/config"
	"github.com/leapstack-labs/sqlecto/internal/cli/output"
	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

const (
	shellPrompt         = "sqlecto> "
	shellContinuePrompt = "    ...> "
)

// NewShellCommand creates the interactive shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Transpile statements interactively",
		Long: `Start an interactive shell. Each statement terminated by ";" is
transpiled from the source dialect to the target dialect.

Dot-commands change dialects and formatting while the shell runs; type
.help to list them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd)
		},
	}
}

// lineReader is the part of readline the shell loop uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

func runShell(cmd *cobra.Command) error {
	cc := NewCommandContext(cmd)

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".sqlecto_history")
	}

	names := dialect.List()
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".dialects"),
		readline.PcItem(".pretty", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}
	var dialectItems []readline.PrefixCompleterInterface
	for _, n := range names {
		dialectItems = append(dialectItems, readline.PcItem(n))
	}
	items = append(items,
		readline.PcItem(".source", dialectItems...),
		readline.PcItem(".target", dialectItems...),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shellPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	// Copy so dot-commands do not leak into the loaded config
	cfg := *cc.Cfg
	return newShell(&cfg, cc.Renderer).loop(rl)
}

// shell holds the state of an interactive session.
type shell struct {
	cfg  *config.Config
	r    *output.Renderer
	conv *converter
}

func newShell(cfg *config.Config, r *output.Renderer) *shell {
	return &shell{cfg: cfg, r: r}
}

func (s *shell) loop(rl lineReader) error {
	s.r.Println(fmt.Sprintf("sqlecto shell (%s -> %s)", orUnset(s.cfg.SourceDialect), orUnset(s.cfg.TargetDialect)))
	s.r.Println("Type .help for commands, .quit to exit")
	s.r.Println()

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt(shellPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Handle dot-commands
		if buf.Len() == 0 && strings.HasPrefix(line, ".") {
			if s.dotCommand(line) {
				return nil
			}
			continue
		}

		// Accumulate multi-line SQL until semicolon
		buf.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buf.WriteString("\n")
			rl.SetPrompt(shellContinuePrompt)
			continue
		}

		sql := buf.String()
		buf.Reset()
		rl.SetPrompt(shellPrompt)
		s.execute(sql)
	}
}

// execute transpiles sql and prints the result or the error.
func (s *shell) execute(sql string) {
	if s.conv == nil {
		conv, err := newConverter(s.cfg)
		if err != nil {
			s.r.Error(err.Error())
			return
		}
		s.conv = conv
	}
	res, err := s.conv.convert(sql)
	if err != nil {
		s.r.Error(err.Error())
		return
	}
	if err := renderStatements(s.r, res); err != nil {
		s.r.Error(err.Error())
	}
}

// dotCommand runs a dot-command and reports whether the shell should exit.
func (s *shell) dotCommand(line string) bool {
	fields := strings.Fields(line)
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch fields[0] {
	case ".quit", ".exit":
		return true
	case ".help":
		s.r.Println(`.source <dialect>   set the source dialect
.target <dialect>   set the target dialect
.pretty on|off      toggle pretty printing
.dialects           list dialects
.quit               exit the shell`)
	case ".dialects":
		s.r.Println(strings.Join(dialect.List(), ", "))
	case ".source", ".target":
		if arg == "" {
			s.r.Println(fmt.Sprintf("%s -> %s", orUnset(s.cfg.SourceDialect), orUnset(s.cfg.TargetDialect)))
			return false
		}
		d, ok := dialect.Get(arg)
		if !ok {
			s.r.Error(fmt.Sprintf("unknown dialect: %s", arg))
			return false
		}
		if fields[0] == ".source" {
			s.cfg.SourceDialect = d.Name
		} else {
			s.cfg.TargetDialect = d.Name
		}
		s.conv = nil
		s.r.Success(fmt.Sprintf("%s -> %s", orUnset(s.cfg.SourceDialect), orUnset(s.cfg.TargetDialect)))
	case ".pretty":
		switch arg {
		case "on":
			s.cfg.Pretty = true
		case "off":
			s.cfg.Pretty = false
		default:
			s.r.Error("usage: .pretty on|off")
			return false
		}
		s.conv = nil
	default:
		s.r.Error(fmt.Sprintf("unknown command: %s (type .help)", fields[0]))
	}
	return false
}

func orUnset(name string) string {
	if name == "" {
		return "?"
	}
	return name
}
