package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/proteinlab/internal/notice"
	"github.com/abhisek/proteinlab/internal/ui/theme"
)

// ToastExpiredMsg is delivered when a toast's display time is over.
type ToastExpiredMsg struct {
	ToastID string
	Seq     uint64
}

// Toast shows one transient message at a time.
type Toast struct {
	id    string
	board *notice.Board
}

// NewToast creates an empty toast.
func NewToast() Toast {
	return Toast{id: uuid.NewString(), board: &notice.Board{}}
}

// Show replaces the visible message and schedules its expiry.
func (t Toast) Show(text string) tea.Cmd {
	ticket := t.board.Post(text)
	id := t.id
	return tea.Tick(ticket.TTL, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ToastID: id, Seq: ticket.Seq}
	})
}

// Update clears the message when its own expiry arrives. It reports
// whether msg belonged to this toast.
func (t Toast) Update(msg tea.Msg) bool {
	m, ok := msg.(ToastExpiredMsg)
	if !ok || m.ToastID != t.id {
		return false
	}
	t.board.Expire(m.Seq)
	return true
}

// Clear hides the message now.
func (t Toast) Clear() {
	t.board.Clear()
}

// Text returns the visible message.
func (t Toast) Text() string {
	return t.board.Text()
}

// View renders the message, or a blank line of the same height.
func (t Toast) View(width int) string {
	text := t.board.Text()
	if text == "" {
		return lipgloss.NewStyle().Width(width).Render("")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Toast.Render(text))
}
