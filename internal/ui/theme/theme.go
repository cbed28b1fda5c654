package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Molecule colours, keyed to the side-chain classes and bond kinds drawn on
// the folding canvas.
var (
	Backbone    = lipgloss.Color("#64748B")
	Hydrophobic = lipgloss.Color("#F59E0B")
	Cysteine    = lipgloss.Color("#EAB308")
	Acidic      = lipgloss.Color("#EF4444")
	Basic       = lipgloss.Color("#3B82F6")
	Polar       = lipgloss.Color("#10B981")
	Neutral     = lipgloss.Color("#CBD5E1")

	HydrogenBond = lipgloss.Color("#38BDF8")
	Disulfide    = lipgloss.Color("#FDE047")
	IonicBond    = lipgloss.Color("#C084FC")

	AlphaGlobin = lipgloss.Color("#F43F5E")
	BetaGlobin  = lipgloss.Color("#3B82F6")
	Heme        = lipgloss.Color("#DC2626")
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

	Muted = lipgloss.NewStyle().
		Foreground(TextDim)
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

	Toast = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Accent).
		Bold(true).
		Padding(0, 2)
)

// SideChainColor returns the colour for a side-chain class name as
// reported by folding.SideChain.String.
func SideChainColor(class string) color.Color {
	switch class {
	case "hydrophobic":
		return Hydrophobic
	case "cysteine":
		return Cysteine
	case "acidic":
		return Acidic
	case "basic":
		return Basic
	case "polar":
		return Polar
	default:
		return Neutral
	}
}
