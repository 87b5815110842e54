package output

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#02A35A", Dark: "#04B575"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#C88A00", Dark: "#F2B705"}
	colorError   = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F6D"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
)

// Styles holds the lipgloss styles used by a Renderer.
type Styles struct {
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles builds styles for a lipgloss renderer.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Header:    lr.NewStyle().Bold(true).Foreground(colorAccent),
		Subheader: lr.NewStyle().Bold(true),
		Success:   lr.NewStyle().Foreground(colorSuccess),
		Warning:   lr.NewStyle().Foreground(colorWarning),
		Error:     lr.NewStyle().Foreground(colorError).Bold(true),
		Muted:     lr.NewStyle().Foreground(colorMuted),
	}
}
