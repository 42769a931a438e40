// Package tui provides the Bubble Tea host for breakout: the tick source,
// input mapping, screen rendering, the home and journal screens, and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick chain that produced it.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// the interval for the given rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// tickChain is the game's tick source inside Bubble Tea. Ticks are a chain
// of one-shot tea.Tick commands; Start bumps the generation so ticks from an
// older chain are dropped, and Stop ends the chain at the next tick.
// Start and Stop run inside Update, so the model issues the first command
// of a new chain itself via pending.
type tickChain struct {
	rate   int
	gen    int
	active bool
	armed  bool
}

func newTickChain(rate int) *tickChain {
	return &tickChain{rate: rate}
}

// Start begins a new chain.
func (c *tickChain) Start() {
	c.gen++
	c.active = true
	c.armed = true
}

// Stop ends the current chain.
func (c *tickChain) Stop() {
	c.active = false
	c.armed = false
}

// Active reports whether ticks are flowing.
func (c *tickChain) Active() bool {
	return c.active
}

// pending returns the first command of a chain started since the last call.
func (c *tickChain) pending() tea.Cmd {
	if !c.armed {
		return nil
	}
	c.armed = false
	return tickCmd(c.rate, c.gen)
}

// accept reports whether msg belongs to the live chain.
func (c *tickChain) accept(msg TickMsg) bool {
	return c.active && msg.Gen == c.gen
}

// next returns the command for the following tick, or nil if the chain stopped.
func (c *tickChain) next() tea.Cmd {
	if !c.active {
		return nil
	}
	return tickCmd(c.rate, c.gen)
}
