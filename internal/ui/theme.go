package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color scheme for the tool's output
type Theme struct {
	Name string

	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Border    lipgloss.Color
	Selection lipgloss.Color
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Name: "Tokyo Night",

	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),
	Accent:    lipgloss.Color("#7dcfff"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	Border:    lipgloss.Color("#3b4261"),
	Selection: lipgloss.Color("#33467c"),
}

// Styles holds the pre-computed styles for rendering
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style

	ID        lipgloss.Style
	Done      lipgloss.Style
	Dim       lipgloss.Style
	Overdue   lipgloss.Style
	DueToday  lipgloss.Style
	Tag       lipgloss.Style
	Selection lipgloss.Style
	Help      lipgloss.Style

	PriorityLow    lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityHigh   lipgloss.Style
}

// NewStyles builds the style set for a theme
func NewStyles(t Theme) *Styles {
	return &Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Header: lipgloss.NewStyle().Bold(true).Foreground(t.ForegroundDim),

		ID:        lipgloss.NewStyle().Foreground(t.Accent),
		Done:      lipgloss.NewStyle().Foreground(t.ForegroundDim).Strikethrough(true),
		Dim:       lipgloss.NewStyle().Foreground(t.ForegroundDim),
		Overdue:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		DueToday:  lipgloss.NewStyle().Foreground(t.Warning),
		Tag:       lipgloss.NewStyle().Foreground(t.Secondary),
		Selection: lipgloss.NewStyle().Background(t.Selection),
		Help:      lipgloss.NewStyle().Foreground(t.ForegroundDim),

		PriorityLow:    lipgloss.NewStyle().Foreground(t.Success),
		PriorityMedium: lipgloss.NewStyle().Foreground(t.Warning),
		PriorityHigh:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),
	}
}

// DefaultStyles uses the default theme
func DefaultStyles() *Styles {
	return NewStyles(TokyoNight)
}
