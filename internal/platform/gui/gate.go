package gui

// tickGate is the game's tick source under Ebitengine. Ebitengine calls
// Update at a fixed TPS on its own; the gate only decides whether those
// calls advance the simulation.
type tickGate struct {
	active bool
}

// Start opens the gate.
func (t *tickGate) Start() {
	t.active = true
}

// Stop closes the gate.
func (t *tickGate) Stop() {
	t.active = false
}

// Active reports whether Update should tick the game.
func (t *tickGate) Active() bool {
	return t.active
}
