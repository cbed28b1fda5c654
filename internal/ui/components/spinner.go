package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/proteinlab/internal/ui/theme"
)

// Loading is a spinner with a caption.
type Loading struct {
	Caption string
	spin    spinner.Model
}

// NewLoading creates a spinner showing caption.
func NewLoading(caption string) Loading {
	return Loading{
		Caption: caption,
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
		),
	}
}

// Tick starts the animation.
func (l Loading) Tick() tea.Msg {
	return l.spin.Tick()
}

// Update advances the animation on its own tick messages.
func (l Loading) Update(msg tea.Msg) (Loading, tea.Cmd) {
	var cmd tea.Cmd
	l.spin, cmd = l.spin.Update(msg)
	return l, cmd
}

// View renders the spinner and caption.
func (l Loading) View() string {
	return l.spin.View() + " " + theme.Muted.Render(l.Caption)
}
