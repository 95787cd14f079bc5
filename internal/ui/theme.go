package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used to render events. Empty colors render unstyled.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Accent  string
	Success string
	Danger  string
	Info    string
}

// Styles contains Lipgloss styles built for one output.
type Styles struct {
	Type   lipgloss.Style
	Repo   lipgloss.Style
	URL    lipgloss.Style
	Muted  lipgloss.Style
	Header lipgloss.Style
	Danger lipgloss.Style
}

// Styles returns styles bound to the given renderer. The plain theme yields
// styles that render text unchanged.
func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	if t.IsPlain() {
		return Styles{
			Type:   r.NewStyle(),
			Repo:   r.NewStyle(),
			URL:    r.NewStyle(),
			Muted:  r.NewStyle(),
			Header: r.NewStyle(),
			Danger: r.NewStyle(),
		}
	}
	return Styles{
		Type: r.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Repo: r.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		URL: r.NewStyle().
			Foreground(lipgloss.Color(t.Info)).
			Underline(true),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Header: r.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Danger: r.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
	}
}

// IsPlain reports whether the theme carries no colors.
func (t Theme) IsPlain() bool {
	return t.Accent == "" && t.Text == ""
}

var themes = map[string]Theme{
	"Plain":    {Name: "Plain"},
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
}

var themeOrder = []string{"Plain", "Nightfox", "Kanagawa"}

// GetTheme returns a theme by name, defaulting to Plain.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["Plain"]
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:    "Nightfox",
		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Danger:  "#c94f6d", // red
		Info:    "#63cdcf", // cyan
	}
}

func kanagawaTheme() Theme {
	return Theme{
		Name:    "Kanagawa",
		Text:    "#DCD7BA", // fujiWhite
		Muted:   "#C8C093", // oldWhite
		Accent:  "#7E9CD8", // crystalBlue
		Success: "#98BB6C", // springGreen
		Danger:  "#E46876", // waveRed
		Info:    "#7FB4CA", // springBlue
	}
}
