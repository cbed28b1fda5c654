package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/proteinlab/internal/ui/layout"
)

// Screen is one page of the application.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer
// key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeHandler is implemented by screens that consume Esc themselves
// instead of letting the app pop them.
type EscapeHandler interface {
	HandlesEscape() bool
}

// Closer is implemented by screens holding background work. The router
// calls Close when the screen leaves the stack.
type Closer interface {
	Close()
}
