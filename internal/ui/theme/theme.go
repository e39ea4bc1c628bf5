package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: calm blues and violets on a dark terminal
var (
	Primary   = lipgloss.Color("#4C6EF5") // HelpMate Blue
	Secondary = lipgloss.Color("#7950F2") // Violet
	Accent    = lipgloss.Color("#F59F00") // Amber
	Success   = lipgloss.Color("#40C057") // Green
	Error     = lipgloss.Color("#FA5252") // Red
	Text      = lipgloss.Color("#F8F9FA") // White
	TextDim   = lipgloss.Color("#ADB5BD") // Gray
	BgDark    = lipgloss.Color("#101524") // Night
	BgCard    = lipgloss.Color("#1C2333") // Card
	Border    = lipgloss.Color("#343A40") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	DotActive = lipgloss.NewStyle().
			Foreground(Primary)

	DotInactive = lipgloss.NewStyle().
			Foreground(Border)
)

// Mark is a slide accent: an icon glyph and its colour.
type Mark struct {
	Icon  string
	Color color.Color
}

// Slides refer to accents and backdrops by key so that content stays free of
// styling values.
var (
	accents = map[string]Mark{
		"heart":  {Icon: "♥", Color: Primary},
		"award":  {Icon: "★", Color: Secondary},
		"globe":  {Icon: "◍", Color: Primary},
		"shield": {Icon: "⛨", Color: Primary},
	}

	backdrops = map[string]color.Color{
		"blue":   lipgloss.Color("#1B2A52"),
		"purple": lipgloss.Color("#2A1F4D"),
		"green":  lipgloss.Color("#173A2B"),
	}
)

// AccentFor resolves an accent key. Unknown keys get a neutral dot.
func AccentFor(key string) Mark {
	if m, ok := accents[key]; ok {
		return m
	}
	return Mark{Icon: "●", Color: Primary}
}

// BackdropFor resolves a background theme key. Unknown keys use the card colour.
func BackdropFor(key string) color.Color {
	if c, ok := backdrops[key]; ok {
		return c
	}
	return BgCard
}
