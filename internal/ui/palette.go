package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/onboard/internal/theme"
)

// Palette defines the colors for one resolved theme.
type Palette struct {
	Name string

	Background string
	Surface    string
	Border     string

	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles contains pre-built Lipgloss styles for a palette.
type Styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	Text      lipgloss.Style
	MutedText lipgloss.Style
	Label     lipgloss.Style
	Prompt    lipgloss.Style
	Badge     lipgloss.Style
	ErrorBox  lipgloss.Style
	ErrorText lipgloss.Style
	Footer    lipgloss.Style
}

// Styles returns Lipgloss styles for this palette.
func (p Palette) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Surface)).
			Foreground(lipgloss.Color(p.Text)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)),

		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Accent)).
			Foreground(lipgloss.Color(p.Background)).
			Padding(0, 1),

		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Danger)).
			Padding(0, 1),

		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Danger)),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Padding(0, 1),
	}
}

// PaletteFor returns the palette used for a resolved theme.
func PaletteFor(r theme.Resolved) Palette {
	if r == theme.ResolvedLight {
		return dawnfoxPalette()
	}
	return kanagawaPalette()
}

func kanagawaPalette() Palette {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Palette{
		Name:       "dark",
		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		Border:     "#54546D", // sumiInk6
		Text:       "#DCD7BA", // fujiWhite
		Muted:      "#727169", // fujiGray
		Accent:     "#7E9CD8", // crystalBlue
		Success:    "#98BB6C", // springGreen
		Warning:    "#E6C384", // carpYellow
		Danger:     "#E46876", // waveRed
	}
}

func dawnfoxPalette() Palette {
	// Dawnfox palette: https://github.com/EdenEast/nightfox.nvim
	return Palette{
		Name:       "light",
		Background: "#faf4ed", // bg1
		Surface:    "#ebe0df", // bg3
		Border:     "#bdbfc9", // bg4
		Text:       "#575279", // fg1
		Muted:      "#9893a5", // comment
		Accent:     "#286983", // blue
		Success:    "#618774", // green
		Warning:    "#ea9d34", // yellow
		Danger:     "#b4637a", // red
	}
}
