package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/proteinlab/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice is a cursor over a list of options. After Reveal it shows the
// correct option in green and a wrong choice in red.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Revealed     bool
	ChosenIndex  int
}

// NewMultiChoice creates a multiple-choice selector.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update moves the cursor. Letter and number keys jump to an option. It
// never submits; the owning screen decides what Enter means.
func (m MultiChoice) Update(msg tea.Msg) MultiChoice {
	if m.Revealed {
		return m
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m
	}
	if i, ok := OptionIndex(key, len(m.Options)); ok {
		m.Selected = i
	}
	return m
}

// OptionIndex maps "1".."n" or "a".."z" to an option index.
func OptionIndex(key string, n int) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	var i int
	switch {
	case c >= '1' && c <= '9':
		i = int(c - '1')
	case c >= 'a' && c <= 'z':
		i = int(c - 'a')
	case c >= 'A' && c <= 'Z':
		i = int(c - 'A')
	default:
		return 0, false
	}
	if i >= n {
		return 0, false
	}
	return i, true
}

// Reveal locks the selector with chosen as the learner's answer.
func (m MultiChoice) Reveal(chosen int) MultiChoice {
	m.Revealed = true
	m.ChosenIndex = chosen
	return m
}

// View renders the options.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		style := lipgloss.NewStyle().Width(width).Foreground(theme.Text)
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = style.Foreground(theme.Success).Bold(true)
			line += "  ✓"
		case m.Revealed && i == m.ChosenIndex:
			style = style.Foreground(theme.Error).Bold(true)
			line += "  ✗"
		case m.Revealed:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// IsCorrect reports whether the revealed choice was right.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.ChosenIndex == m.CorrectIndex
}
