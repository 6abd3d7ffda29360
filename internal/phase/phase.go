// Package phase implements the lifecycle state machine shared by every
// simulation core. Legal transitions live in a single table; anything not in
// the table is rejected without changing state.
package phase

import "time"

// Phase is a lifecycle state of a game round.
type Phase int

const (
	Menu Phase = iota
	Playing
	Paused
	LevelComplete
	GameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case Menu:
		return "Menu"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case LevelComplete:
		return "LevelComplete"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Trigger is an event that may move the machine between phases.
type Trigger int

const (
	Start Trigger = iota
	TogglePause
	Terminal // lives exhausted, breach, full grid, score threshold
	Cleared  // all hostiles destroyed
	Advance  // delayed return from LevelComplete
	Reset
)

// String returns a human-readable name for the trigger.
func (t Trigger) String() string {
	switch t {
	case Start:
		return "Start"
	case TogglePause:
		return "TogglePause"
	case Terminal:
		return "Terminal"
	case Cleared:
		return "Cleared"
	case Advance:
		return "Advance"
	case Reset:
		return "Reset"
	default:
		return "Unknown"
	}
}

type edge struct {
	from Phase
	on   Trigger
}

// table is the complete set of legal transitions.
var table = map[edge]Phase{
	{Menu, Start}:            Playing,
	{Menu, Reset}:            Menu,
	{Playing, TogglePause}:   Paused,
	{Paused, TogglePause}:    Playing,
	{Paused, Reset}:          Menu,
	{Playing, Terminal}:      GameOver,
	{Playing, Cleared}:       LevelComplete,
	{LevelComplete, Advance}: Playing,
	{GameOver, Reset}:        Menu,
}

// Next looks up the destination for a trigger without applying it.
func Next(from Phase, on Trigger) (Phase, bool) {
	to, ok := table[edge{from, on}]
	return to, ok
}

// Transition describes one applied change.
type Transition struct {
	From Phase
	To   Phase
	On   Trigger
}

// Deferred is a trigger scheduled to fire after a delay, bound to the phase
// that scheduled it.
type Deferred struct {
	ID      uint64
	Trigger Trigger
	Delay   time.Duration
	in      Phase
}

// Machine holds the current phase and at most one deferred trigger.
type Machine struct {
	current Phase
	hook    func(Transition)
	pending *Deferred
	nextID  uint64
}

// New creates a machine in Menu. hook, if non-nil, runs after every applied
// transition.
func New(hook func(Transition)) *Machine {
	return &Machine{current: Menu, hook: hook}
}

// Current returns the current phase.
func (m *Machine) Current() Phase {
	return m.current
}

// Is reports whether the machine is in p.
func (m *Machine) Is(p Phase) bool {
	return m.current == p
}

// Fire applies a trigger. It returns false and leaves everything untouched
// when the trigger is not legal from the current phase. Any applied
// transition cancels a pending deferred trigger.
func (m *Machine) Fire(t Trigger) bool {
	to, ok := Next(m.current, t)
	if !ok {
		return false
	}
	tr := Transition{From: m.current, To: to, On: t}
	m.current = to
	m.pending = nil
	if m.hook != nil {
		m.hook(tr)
	}
	return true
}

// After schedules t to fire once delay has elapsed, replacing any earlier
// deferred trigger.
func (m *Machine) After(delay time.Duration, t Trigger) Deferred {
	m.nextID++
	d := Deferred{ID: m.nextID, Trigger: t, Delay: delay, in: m.current}
	m.pending = &d
	return d
}

// Pending returns the scheduled deferred trigger, if any.
func (m *Machine) Pending() (Deferred, bool) {
	if m.pending == nil {
		return Deferred{}, false
	}
	return *m.pending, true
}

// Cancel drops the pending deferred trigger.
func (m *Machine) Cancel() {
	m.pending = nil
}

// Resolve fires the deferred trigger with the given id. It returns false if
// that trigger was canceled, replaced, or already fired.
func (m *Machine) Resolve(id uint64) bool {
	if m.pending == nil || m.pending.ID != id || m.pending.in != m.current {
		return false
	}
	t := m.pending.Trigger
	m.pending = nil
	return m.Fire(t)
}

// Restart puts the machine back in Menu without running the hook.
func (m *Machine) Restart() {
	m.current = Menu
	m.pending = nil
}
