package styles

import "github.com/charmbracelet/lipgloss"

// Gotham Night: midnight backgrounds with electric cyan accents.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#0a0e14")
	BgPanel   = lipgloss.Color("#11151c")
	BgSurface = lipgloss.Color("#1a1f2e")

	// Accents
	AccentPrimary   = lipgloss.Color("#4fc1ff") // cyan: current step, focus
	AccentSecondary = lipgloss.Color("#39c5bb")
	AccentGold      = lipgloss.Color("#f5a623")

	// Status
	StatusOK    = lipgloss.Color("#22c55e") // completed steps
	StatusWarn  = lipgloss.Color("#f59e0b")
	StatusError = lipgloss.Color("#ef4444")

	// Text
	TextPrimary   = lipgloss.Color("#e2e8f0")
	TextSecondary = lipgloss.Color("#94a3b8")
	TextMuted     = lipgloss.Color("#64748b") // pending steps

	// Borders
	BorderNormal  = lipgloss.Color("#2d3748")
	BorderFocused = lipgloss.Color("#4fc1ff")

	// Warm pair used by the custom demo page.
	WarmRed   = lipgloss.Color("#ea655c")
	WarmAmber = lipgloss.Color("#eaac5c")
)
