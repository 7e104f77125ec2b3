package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — warm exam-prep reds and navy
var (
	Primary   = lipgloss.Color("#FF7070") // Coral Red
	Secondary = lipgloss.Color("#A0AAFF") // Periwinkle
	Accent    = lipgloss.Color("#FFDE8C") // Amber
	Success   = lipgloss.Color("#87D28C") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#10101E") // Deep Navy
	BgCard    = lipgloss.Color("#1E1E38") // Dark Indigo
	Border    = lipgloss.Color("#3A3A5C") // Dusk
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
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
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Outcome accents for the review keys: again / good / easy.
var (
	OutcomeAgain = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	OutcomeGood = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	OutcomeEasy = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
