package viz

import "github.com/charmbracelet/lipgloss"

var (
	colText   = lipgloss.Color("255")
	colDim    = lipgloss.Color("244")
	colGrid   = lipgloss.Color("240")
	colRed    = lipgloss.Color("160")
	colNavy   = lipgloss.Color("18")
	colHover  = lipgloss.Color("111")
	colGreen  = lipgloss.Color("40")
	colYellow = lipgloss.Color("226")
	colCyan   = lipgloss.Color("86")
	colOrange = lipgloss.Color("214")
)

// DefaultPalette follows the colour scheme of the classroom version of the
// simulation: red block and samples, green linear fit, yellow power fit.
var DefaultPalette = Palette{
	InkText:   lipgloss.NewStyle().Foreground(colText),
	InkDim:    lipgloss.NewStyle().Foreground(colDim),
	InkHeader: lipgloss.NewStyle().Bold(true).Foreground(colCyan),
	InkIncline: lipgloss.NewStyle().
		Foreground(colDim),
	InkBlock:   lipgloss.NewStyle().Foreground(colRed),
	InkScatter: lipgloss.NewStyle().Foreground(colRed),
	InkLinear:  lipgloss.NewStyle().Foreground(colGreen),
	InkPower:   lipgloss.NewStyle().Foreground(colYellow),
	InkMarker:  lipgloss.NewStyle().Bold(true).Foreground(colText),
	InkAxis:    lipgloss.NewStyle().Foreground(colGrid),
	InkButton: lipgloss.NewStyle().
		Foreground(colText).
		Background(colNavy),
	InkButtonHover: lipgloss.NewStyle().
		Foreground(lipgloss.Color("16")).
		Background(colHover),
	InkButtonActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(colText).
		Background(lipgloss.Color("25")),
	InkSuccess:   lipgloss.NewStyle().Bold(true).Foreground(colGreen),
	InkDeviation: lipgloss.NewStyle().Bold(true).Foreground(colOrange),
	InkDivider:   lipgloss.NewStyle().Foreground(colGrid),
}
