// Package notice holds short-lived messages such as rejection hints. Each
// posted message gets its own sequence number, so an expiry only clears the
// message it was scheduled for and a newer message survives older timers.
package notice

import "time"

// DefaultTTL is how long a notice stays visible.
const DefaultTTL = 1500 * time.Millisecond

// Ticket identifies one posted message.
type Ticket struct {
	Seq uint64
	TTL time.Duration
}

// Board holds at most one visible message.
type Board struct {
	text string
	seq  uint64
}

// Post replaces the visible message and returns the ticket to expire it with.
func (b *Board) Post(text string) Ticket {
	b.seq++
	b.text = text
	return Ticket{Seq: b.seq, TTL: DefaultTTL}
}

// Expire clears the message if seq is still the one showing.
func (b *Board) Expire(seq uint64) bool {
	if seq != b.seq || b.text == "" {
		return false
	}
	b.text = ""
	return true
}

// Clear drops the visible message immediately.
func (b *Board) Clear() {
	b.text = ""
}

// Text returns the visible message, or "".
func (b *Board) Text() string {
	return b.text
}
